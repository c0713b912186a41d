package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expo-kit/rn-expo-mcp/internal/config"
	"github.com/expo-kit/rn-expo-mcp/internal/content"
	"github.com/expo-kit/rn-expo-mcp/internal/guides"
	"github.com/expo-kit/rn-expo-mcp/internal/patterns"
	"github.com/expo-kit/rn-expo-mcp/internal/scaffold"
	"github.com/expo-kit/rn-expo-mcp/internal/search"
)

// --- Test helpers ---

// newTestDeps loads the embedded catalog and builds the search index.
func newTestDeps(t *testing.T) Deps {
	t.Helper()

	reg, err := patterns.Load(content.FS)
	require.NoError(t, err)
	g, err := guides.Load(content.FS)
	require.NoError(t, err)
	gen, err := scaffold.Load(content.FS)
	require.NoError(t, err)
	ix, err := search.Build(context.Background(), reg, g)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ix.Close() })

	return Deps{
		Patterns:  reg,
		Guides:    g,
		Generator: gen,
		Index:     ix,
		Config:    config.Default(),
	}
}

func newTestCatalog(t *testing.T) (*Catalog, Deps) {
	t.Helper()
	d := newTestDeps(t)
	c, err := NewCatalog(d)
	require.NoError(t, err)
	return c, d
}

// call invokes a tool through the catalog and fails on transport errors.
func call(t *testing.T, c *Catalog, name ToolName, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	tool, err := c.Lookup(string(name))
	require.NoError(t, err)

	req := mcp.CallToolRequest{}
	req.Params.Name = string(name)
	req.Params.Arguments = args
	result, err := tool.Handle(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

// isErrorResult checks if a CallToolResult is an error result.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// --- Catalog ---

func TestCatalog_RegistersEveryNameOnce(t *testing.T) {
	c, _ := newTestCatalog(t)

	list := c.Tools()
	require.Len(t, list, len(Names))
	for i, tool := range list {
		assert.Equal(t, string(Names[i]), tool.Definition().Name)
	}

	for _, name := range Names {
		tool, err := c.Lookup(string(name))
		require.NoError(t, err, name)
		assert.Equal(t, string(name), tool.Definition().Name)
	}
}

func TestCatalog_LookupUnknown(t *testing.T) {
	c, _ := newTestCatalog(t)

	for _, name := range []string{"", "get-unknown", "GET-COMPONENT-PATTERNS", "get-component-patterns "} {
		_, err := c.Lookup(name)
		assert.True(t, errors.Is(err, ErrUnknownTool), "%q", name)
	}
}

func TestCatalog_Call(t *testing.T) {
	c, d := newTestCatalog(t)

	result, err := c.Call(context.Background(), string(CheatSheet), nil)
	require.NoError(t, err)
	assert.Equal(t, d.Guides.CheatSheet(), getResultText(result))

	_, err = c.Call(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestNewCatalog_RejectsIncompleteTable(t *testing.T) {
	d := newTestDeps(t)

	_, err := newCatalog([]Tool{NewEnvSetupTool(d.Generator)})
	assert.Error(t, err)

	dup := []Tool{NewEnvSetupTool(d.Generator), NewEnvSetupTool(d.Generator)}
	_, err = newCatalog(dup)
	assert.ErrorContains(t, err, "registered twice")
}

func TestNewCatalog_MissingFamily(t *testing.T) {
	d := newTestDeps(t)

	f, err := patterns.NewFamily(patterns.Components, "Components", []patterns.Section{{Key: "a", Full: "A"}})
	require.NoError(t, err)
	d.Patterns, err = patterns.NewRegistry(f)
	require.NoError(t, err)

	_, err = NewCatalog(d)
	assert.ErrorContains(t, err, patterns.ScreenArchitecture)
}

func TestDefinitions_AreReadOnly(t *testing.T) {
	c, _ := newTestCatalog(t)

	for _, tool := range c.Tools() {
		def := tool.Definition()
		assert.NotEmpty(t, def.Description, def.Name)
		require.NotNil(t, def.Annotations.ReadOnlyHint, def.Name)
		assert.True(t, *def.Annotations.ReadOnlyHint, def.Name)
	}
}

// --- Pattern tools ---

func TestPatternTool_WholeFamily(t *testing.T) {
	c, d := newTestCatalog(t)

	for _, p := range patternTools {
		family, ok := d.Patterns.Family(p.family)
		require.True(t, ok, p.family)

		text := getResultText(call(t, c, p.name, nil))
		assert.Equal(t, patterns.Resolve(family, "", false), text, p.name)
		assert.True(t, strings.HasPrefix(text, "# "+family.Title()+"\n\n"), p.name)
	}
}

func TestPatternTool_Topic(t *testing.T) {
	c, d := newTestCatalog(t)
	family, _ := d.Patterns.Family(patterns.State)

	full := getResultText(call(t, c, StatePatterns, map[string]interface{}{"topic": "why-mmkv"}))
	entry, _ := family.Full("why-mmkv")
	assert.Equal(t, "# "+family.Title()+"\n\n"+entry, full)

	compact := getResultText(call(t, c, StatePatterns, map[string]interface{}{"topic": "why-mmkv", "compact": true}))
	assert.True(t, strings.HasPrefix(compact, "# "+family.Title()+"\n\n"))
	assert.LessOrEqual(t, len(compact), len(full))
}

func TestPatternTool_UnknownTopic(t *testing.T) {
	c, d := newTestCatalog(t)
	family, _ := d.Patterns.Family(patterns.Components)

	result := call(t, c, ComponentPatterns, map[string]interface{}{"topic": "nope"})
	assert.False(t, isErrorResult(result))
	want := "# " + family.Title() + "\n\nUnknown topic: \"nope\". Available topics: " + strings.Join(family.Keys(), ", ")
	assert.Equal(t, want, getResultText(result))
}

func TestPatternTool_TopicEnum(t *testing.T) {
	c, d := newTestCatalog(t)
	family, _ := d.Patterns.Family(patterns.Components)

	tool, err := c.Lookup(string(ComponentPatterns))
	require.NoError(t, err)
	prop, ok := tool.Definition().InputSchema.Properties["topic"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, family.Keys(), prop["enum"])
}

// --- get-setup-guide ---

func TestSetupGuide_StepForms(t *testing.T) {
	c, d := newTestCatalog(t)
	g := d.Guides

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"float", map[string]interface{}{"step": float64(3)}, g.Step(3, config.RouterExpo)},
		{"int", map[string]interface{}{"step": 4}, g.Step(4, config.RouterExpo)},
		{"numeric string", map[string]interface{}{"step": " 5 "}, g.Step(5, config.RouterExpo)},
		{"overview", map[string]interface{}{"step": "overview"}, g.Overview()},
		{"all", map[string]interface{}{"step": "ALL"}, g.All(config.RouterExpo)},
		{"react-navigation", map[string]interface{}{"step": float64(2), "router": "react-navigation"}, g.Step(2, config.RouterReactNavigation)},
		{"out of range", map[string]interface{}{"step": float64(14)}, "Step 14 not found. Available steps: 1-13."},
		{"zero", map[string]interface{}{"step": "0"}, "Step 0 not found. Available steps: 1-13."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, c, SetupGuide, tt.args)
			assert.False(t, isErrorResult(result))
			assert.Equal(t, tt.want, getResultText(result))
		})
	}
}

func TestSetupGuide_RouterBranches(t *testing.T) {
	c, _ := newTestCatalog(t)

	expo := getResultText(call(t, c, SetupGuide, map[string]interface{}{"step": float64(2)}))
	rn := getResultText(call(t, c, SetupGuide, map[string]interface{}{"step": float64(2), "router": "react-navigation"}))
	assert.Contains(t, expo, "(Expo Router)")
	assert.Contains(t, rn, "(React Navigation)")
	assert.NotEqual(t, expo, rn)
}

func TestSetupGuide_InvalidArgs(t *testing.T) {
	c, _ := newTestCatalog(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing", map[string]interface{}{}},
		{"nil args", nil},
		{"fraction", map[string]interface{}{"step": 2.5}},
		{"word", map[string]interface{}{"step": "two"}},
		{"bool", map[string]interface{}{"step": true}},
		{"bad router", map[string]interface{}{"step": float64(1), "router": "wix"}},
		{"router type", map[string]interface{}{"step": float64(1), "router": 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, isErrorResult(call(t, c, SetupGuide, tt.args)))
		})
	}
}

func TestSetupGuide_ConfiguredDefaultRouter(t *testing.T) {
	d := newTestDeps(t)
	tool := NewSetupGuideTool(d.Guides, config.RouterReactNavigation)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{"step": float64(2)}
	result, err := tool.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, d.Guides.Step(2, config.RouterReactNavigation), getResultText(result))
}

func TestCatalog_NonCanonicalDefaultRouter(t *testing.T) {
	tests := []struct {
		configured config.Router
		want       config.Router
		entry      string
	}{
		{"Expo-Router ", config.RouterExpo, "## app/_layout.tsx\n"},
		{" REACT-NAVIGATION", config.RouterReactNavigation, "## App.tsx\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			d := newTestDeps(t)
			d.Config.DefaultRouter = tt.configured
			c, err := NewCatalog(d)
			require.NoError(t, err)

			step := getResultText(call(t, c, SetupGuide, map[string]interface{}{"step": float64(2)}))
			assert.NotEmpty(t, step)
			assert.Equal(t, d.Guides.Step(2, tt.want), step)

			practice := getResultText(call(t, c, BestPractices, map[string]interface{}{"category": "navigation"}))
			assert.NotEmpty(t, practice)
			assert.Equal(t, d.Guides.Practice("navigation", tt.want), practice)

			files := getResultText(call(t, c, GenerateProjectFiles, map[string]interface{}{"appName": "ShopApp"}))
			assert.Contains(t, files, "("+string(tt.want)+")")
			assert.Contains(t, files, tt.entry)
		})
	}
}

func TestNewCatalog_UnknownDefaultRouter(t *testing.T) {
	d := newTestDeps(t)
	d.Config.DefaultRouter = "solito"
	_, err := NewCatalog(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnknownRouter))
}

// --- get-best-practices ---

func TestBestPractices(t *testing.T) {
	c, d := newTestCatalog(t)
	g := d.Guides

	neutral := getResultText(call(t, c, BestPractices, map[string]interface{}{"category": "navigation"}))
	assert.Equal(t, g.Practice("navigation", config.RouterUnspecified), neutral)
	assert.Contains(t, neutral, "## Expo Router: Typing")
	assert.Contains(t, neutral, "## React Navigation: Typing")

	expo := getResultText(call(t, c, BestPractices, map[string]interface{}{"category": "navigation", "router": "expo-router"}))
	assert.Contains(t, expo, "## Expo Router: Typing")
	assert.NotContains(t, expo, "## React Navigation: Typing")

	all := getResultText(call(t, c, BestPractices, map[string]interface{}{"category": "all"}))
	assert.Equal(t, g.Practice("all", config.RouterUnspecified), all)
	assert.True(t, strings.HasPrefix(all, g.Practice(string(guides.StackChoice), config.RouterUnspecified)+guides.Separator))

	unknown := call(t, c, BestPractices, map[string]interface{}{"category": "testing"})
	assert.False(t, isErrorResult(unknown))
	assert.True(t, strings.HasPrefix(getResultText(unknown), `Category "testing" not found. Available: stack-choice, `))
	assert.True(t, strings.HasSuffix(getResultText(unknown), ", all"))

	assert.True(t, isErrorResult(call(t, c, BestPractices, map[string]interface{}{})))
}

// --- Generators ---

func TestProjectFiles_Defaults(t *testing.T) {
	c, _ := newTestCatalog(t)

	text := getResultText(call(t, c, GenerateProjectFiles, map[string]interface{}{"appName": "ShopApp"}))
	assert.True(t, strings.HasPrefix(text, "# Starter files for ShopApp (expo-router)\n\nCreate the following files in your project:\n\n"))
	assert.Contains(t, text, "## app/_layout.tsx\n")
	assert.Contains(t, text, "## env/env.example.json\n")
	assert.NotContains(t, text, "## .github/workflows/eas-build.yml")
	assert.True(t, strings.HasSuffix(text, "npm install\nnpx expo start --clear\n```\n"))
}

func TestProjectFiles_Options(t *testing.T) {
	c, _ := newTestCatalog(t)

	text := getResultText(call(t, c, GenerateProjectFiles, map[string]interface{}{
		"appName":         "ShopApp",
		"router":          "react-navigation",
		"includeCI":       true,
		"includeEnvSetup": false,
		"features":        []interface{}{"auth", "cart"},
	}))
	assert.Contains(t, text, "(react-navigation)")
	assert.Contains(t, text, "## App.tsx\n")
	assert.NotContains(t, text, "## app/_layout.tsx")
	assert.NotContains(t, text, "## env/env.example.json")
	assert.Contains(t, text, "## .github/workflows/eas-build.yml\n")
}

func TestProjectFiles_EscapesAppName(t *testing.T) {
	c, _ := newTestCatalog(t)

	text := getResultText(call(t, c, GenerateProjectFiles, map[string]interface{}{"appName": `Shop<{"X"}>`}))
	assert.Contains(t, text, "Shop&lt;&#123;\"X\"&#125;&gt;")
	assert.Contains(t, text, `APP_NAME = "Shop<{\"X\"}>"`)
}

func TestProjectFiles_Deterministic(t *testing.T) {
	c, _ := newTestCatalog(t)
	args := map[string]interface{}{"appName": "Same", "includeCI": true}

	first := getResultText(call(t, c, GenerateProjectFiles, args))
	second := getResultText(call(t, c, GenerateProjectFiles, args))
	assert.Equal(t, first, second)
}

func TestGenerators_RequireAppName(t *testing.T) {
	c, _ := newTestCatalog(t)

	for _, name := range []ToolName{GenerateProjectFiles, GenerateClaudeMD, GenerateEnvSetup} {
		assert.True(t, isErrorResult(call(t, c, name, map[string]interface{}{})), name)
		assert.True(t, isErrorResult(call(t, c, name, map[string]interface{}{"appName": 42})), name)
	}
}

func TestClaudeMD(t *testing.T) {
	c, _ := newTestCatalog(t)

	text := getResultText(call(t, c, GenerateClaudeMD, map[string]interface{}{
		"appName":        "ShopApp",
		"appDescription": "Sells things",
		"features":       []interface{}{"auth", "cart"},
	}))
	assert.True(t, strings.HasPrefix(text, "# ShopApp\n"))
	assert.Contains(t, text, "## Description\nSells things")
	assert.Contains(t, text, "- auth\n- cart\n")
	assert.Contains(t, text, "get-component-patterns")

	bare := getResultText(call(t, c, GenerateClaudeMD, map[string]interface{}{"appName": "ShopApp"}))
	assert.NotContains(t, bare, "## Description")
	assert.NotContains(t, bare, "## Main Features")
}

func TestEnvSetup(t *testing.T) {
	c, _ := newTestCatalog(t)

	text := getResultText(call(t, c, GenerateEnvSetup, map[string]interface{}{"appName": "My Shop"}))
	assert.True(t, strings.HasPrefix(text, "# Environment Setup for My Shop"))
	assert.Contains(t, text, "https://api.my-shop.com")
	assert.Contains(t, text, "https://staging-api.my-shop.com")
}

// --- Static tools ---

func TestStaticTools(t *testing.T) {
	c, d := newTestCatalog(t)
	g := d.Guides

	tests := []struct {
		name ToolName
		want string
	}{
		{Troubleshooting, g.Troubleshooting()},
		{CheatSheet, g.CheatSheet()},
		{SetupNewProject, g.SetupNewProject()},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			require.NotEmpty(t, tt.want)
			// Extra arguments are ignored.
			result := call(t, c, tt.name, map[string]interface{}{"unused": true})
			assert.Equal(t, tt.want, getResultText(result))
		})
	}
}

// --- search-docs ---

func TestSearchDocs(t *testing.T) {
	c, _ := newTestCatalog(t)

	text := getResultText(call(t, c, SearchDocs, map[string]interface{}{"query": "MMKV", "limit": float64(20)}))
	assert.True(t, strings.HasPrefix(text, `# Search results for "MMKV"`))
	assert.Contains(t, text, "Fetch with: `get-state-patterns topic=")

	none := getResultText(call(t, c, SearchDocs, map[string]interface{}{"query": "zzzqqqxxx"}))
	assert.Equal(t, `No results for "zzzqqqxxx". Try fewer or more general keywords.`, none)

	assert.True(t, isErrorResult(call(t, c, SearchDocs, map[string]interface{}{"query": "   "})))
}

func TestSearchDocs_Limit(t *testing.T) {
	c, _ := newTestCatalog(t)

	text := getResultText(call(t, c, SearchDocs, map[string]interface{}{"query": "expo", "limit": float64(2)}))
	assert.Contains(t, text, "(2)\n")
	assert.NotContains(t, text, "\n3. ")
}

func TestFetchCall(t *testing.T) {
	tests := []struct {
		r    search.Result
		want string
	}{
		{search.Result{Kind: search.KindPattern, Family: patterns.API, Key: "axios-client"}, "get-api-patterns topic=axios-client"},
		{search.Result{Kind: search.KindSetup, Key: "2", Router: "react-navigation"}, "get-setup-guide step=2 router=react-navigation"},
		{search.Result{Kind: search.KindSetup, Key: "9"}, "get-setup-guide step=9"},
		{search.Result{Kind: search.KindPractice, Key: "styling"}, "get-best-practices category=styling"},
		{search.Result{Kind: search.KindReference, Key: search.RefCheatSheet}, "get-cheat-sheet"},
		{search.Result{Kind: search.KindPattern, Family: "unknown", Key: "x"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fetchCall(tt.r))
	}
}
