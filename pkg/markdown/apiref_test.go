package markdown

import (
	"strings"
	"testing"

	"github.com/cliscribe/cliscribe/pkg/export"
)

func testReference() *export.Reference {
	return &export.Reference{
		Metadata: export.Metadata{Package: "aztec.js", GeneratedAt: "2026-08-01"},
		Folders: []export.Group{{
			Name: "account",
			Path: "account",
			Files: []export.File{{
				Name: "wallet.ts",
				Path: "account/wallet.ts",
				Exports: []export.Export{
					{
						Kind:  export.KindClass,
						Name:  "Wallet",
						JSDoc: export.JSDoc{Description: "Manages keys."},
						Extends: []string{
							"BaseWallet",
						},
						Members: []export.Member{
							{
								Kind:      export.MemberConstructor,
								Signature: "constructor(seed: Buffer)",
								Parameters: []export.Parameter{
									{Name: "seed", Type: "Buffer", Description: "entropy source"},
								},
							},
							{
								Kind: export.MemberProperty,
								Name: "address",
								Type: "AztecAddress",
							},
							{
								Kind:       export.MemberMethod,
								Name:       "sign",
								Signature:  "sign(msg: Buffer): Promise<Signature>",
								ReturnType: "Promise<Signature>",
							},
							{
								Kind:       export.MemberGetter,
								Name:       "publicKey",
								Signature:  "get publicKey(): PublicKey",
								ReturnType: "PublicKey",
							},
						},
					},
					{
						Kind:      export.KindFunction,
						Name:      "createWallet",
						Signature: "function createWallet(): Promise<Wallet>",
						Parameters: []export.Parameter{
							{Name: "opts", Type: "WalletOpts", Optional: true},
						},
						ReturnType:        "Promise<Wallet>",
						ReturnDescription: "a ready wallet",
					},
				},
			}},
		}},
	}
}

func apiConfig() Config {
	cfg := DefaultConfig()
	cfg.Title = "API Reference"
	return cfg
}

func TestRenderAPIReferenceStructure(t *testing.T) {
	doc := RenderAPIReference(testReference(), apiConfig())

	for _, want := range []string{
		"# API Reference\n",
		"*Package: aztec.js*",
		"*Generated: 2026-08-01*",
		"public APIs in the aztec.js library",
		"## Table of Contents",
		"- [Account](#account)",
		"  - [Wallet](#account-wallet-wallet)",
		"  - [createWallet](#account-wallet-createwallet)",
		"\n## Account\n",
		"### `account/wallet.ts`",
		"\n#### Wallet\n",
		"**Type:** Class\n",
		"Manages keys.",
		"**Extends:** `BaseWallet`",
		"\n#### Constructor\n",
		"```typescript\nconstructor(seed: Buffer)\n```",
		"- `seed`: `Buffer`",
		"  - entropy source",
		"\n#### Properties\n",
		"\n##### address\n",
		"**Type:** `AztecAddress`",
		"\n#### Methods\n",
		"\n##### sign\n",
		"\n#### Getters\n",
		"##### publicKey (getter)",
		"**Returns:** `PublicKey`",
		"\n#### createWallet\n",
		"**Type:** Function\n",
		"- `opts` (optional): `WalletOpts`",
		"`Promise<Wallet>` - a ready wallet",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	if !strings.Contains(doc, "\n---\n") {
		t.Error("missing file separator")
	}
}

func TestRenderAPIReferenceDeterministic(t *testing.T) {
	first := RenderAPIReference(testReference(), apiConfig())
	for i := 0; i < 3; i++ {
		if RenderAPIReference(testReference(), apiConfig()) != first {
			t.Fatal("render is not deterministic")
		}
	}
}

func TestRenderTypeAliasMembers(t *testing.T) {
	ref := &export.Reference{
		Folders: []export.Group{{
			Name: "types",
			Files: []export.File{{
				Name: "config.ts",
				Path: "types/config.ts",
				Exports: []export.Export{{
					Kind:      export.KindType,
					Name:      "NodeConfig",
					Signature: "type NodeConfig = {\n  port: number;\n}",
					Members: []export.Member{
						{Kind: export.MemberProperty, Name: "port", Type: "number"},
						{Kind: export.MemberIndexSignature, Name: "index", Signature: "[key: string]", Type: "string"},
						{Kind: export.MemberMappedType, Name: "mapped", Signature: "[K in Keys]", KeyType: "Keys"},
					},
				}},
			}},
		}},
	}
	doc := RenderAPIReference(ref, apiConfig())

	for _, want := range []string{
		"**Type:** Type Alias\n",
		"```typescript\ntype NodeConfig = {\n  port: number;\n}\n```",
		"**Type Members:**",
		"**Value Type:** `string`",
		"**Key Type:** `Keys`",
		"**Value Type:** `any`",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Count(doc, "**Type Members:**") != 1 {
		t.Error("Type Members header should appear once")
	}
}

func TestMultilineReturnTypeFenced(t *testing.T) {
	ref := &export.Reference{
		Folders: []export.Group{{
			Name: "fns",
			Files: []export.File{{
				Name: "query.ts",
				Path: "fns/query.ts",
				Exports: []export.Export{{
					Kind:       export.KindFunction,
					Name:       "query",
					Signature:  "function query(): Result",
					ReturnType: "{\n  rows: Row[];\n}",
				}},
			}},
		}},
	}
	doc := RenderAPIReference(ref, apiConfig())
	if !strings.Contains(doc, "**Returns:**\n\n```typescript\n{\n  rows: Row[];\n}\n```") {
		t.Errorf("multi-line return type not fenced:\n%s", doc)
	}
}

func TestVoidReturnOmitted(t *testing.T) {
	ref := &export.Reference{
		Folders: []export.Group{{
			Name: "fns",
			Files: []export.File{{
				Name: "run.ts",
				Path: "fns/run.ts",
				Exports: []export.Export{{
					Kind:       export.KindFunction,
					Name:       "run",
					Signature:  "function run(): void",
					ReturnType: "void",
				}},
			}},
		}},
	}
	doc := RenderAPIReference(ref, apiConfig())
	if strings.Contains(doc, "**Returns:**") {
		t.Error("void function should have no Returns section")
	}
}

func TestFileWithoutExportsSkipped(t *testing.T) {
	ref := &export.Reference{
		Folders: []export.Group{{
			Name:  "empty",
			Files: []export.File{{Name: "index.ts", Path: "empty/index.ts"}},
		}},
	}
	doc := RenderAPIReference(ref, apiConfig())
	if strings.Contains(doc, "empty/index.ts") {
		t.Error("file without exports should be omitted")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"account", "Account"},
		{"account / keys", "Account / Keys"},
		{"aztec.js", "Aztec.Js"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
