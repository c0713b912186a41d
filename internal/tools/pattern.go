package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/expo-kit/rn-expo-mcp/internal/patterns"
)

// patternTool binds a tool name to the family it resolves against.
type patternTool struct {
	name        ToolName
	family      string
	description string
}

var patternTools = []patternTool{
	{ComponentPatterns, patterns.Components,
		"Get React Native component patterns. Call this when creating any component: button, card, list item, image, form input. " +
			"Covers Pressable, expo-image, React.memo, React Compiler, composable pattern, and uncontrolled TextInput."},
	{ScreenArchitecture, patterns.ScreenArchitecture,
		"Get screen architecture patterns (Logic/UI separation). Call this when creating a new screen or route. " +
			"Covers the Route file + ScreenUI file split, naming conventions, and why it matters for testability."},
	{NavigationPatterns, patterns.Navigation,
		"Get Expo Router navigation patterns. Call this when working with routes, navigation, deep links, or auth guards. " +
			"Covers file structure, layouts, AuthGuard, typed params, navigation API, deep linking, and layout groups."},
	{StatePatterns, patterns.State,
		"Get state management patterns (Zustand + MMKV). Call this when creating a store or working with global state. " +
			"Covers store setup, MMKV persistence adapter, selectors, useShallow, getState() outside React, and store organization."},
	{APIPatterns, patterns.API,
		"Get API and data fetching patterns (Axios + TanStack Query). Call this when creating API services or data fetching hooks. " +
			"Covers the Axios client with interceptors, domain-grouped services, query/mutation hooks, query keys, and QueryClient config."},
	{StylingPatterns, patterns.Styling,
		"Get styling patterns (NativeWind / Tailwind CSS). Call this when styling components. " +
			"Covers NativeWind v4 className, arbitrary values, cssInterop, Tailwind config, JS constants, and conditional styles."},
	{PerformancePatterns, patterns.Performance,
		"Get performance optimization patterns. Call this when optimizing lists, images, bundle size, or animations. " +
			"Covers FlashList/FlatList, image optimization, tree-shaking, React Compiler, Concurrent React, InteractionManager, and Reanimated worklets."},
	{ProjectStructure, patterns.ProjectStructure,
		"Get project folder structure and file placement guide. Call this when deciding where to place a new file. " +
			"Covers the folder tree, where screens/components/hooks/services/stores/types go, naming conventions, and import aliases."},
	{TypeScriptPatterns, patterns.TypeScript,
		"Get TypeScript patterns for React Native. Call this when writing types or interfaces. " +
			"Covers strict mode, path aliases, model and API response types, route params, props naming, generics, as const, and discriminated unions."},
	{MemoryOptimization, patterns.Memory,
		"Get memory optimization patterns. Call this when debugging memory leaks or performance issues. " +
			"Covers useEffect cleanup, closure leaks, the DevTools memory profiler, view flattening, R8 shrinking, and a leak sources checklist."},
}

// PatternTool serves one pattern family.
type PatternTool struct {
	name        ToolName
	family      *patterns.Family
	description string
}

// NewPatternTool creates a PatternTool over family.
func NewPatternTool(name ToolName, family *patterns.Family, description string) *PatternTool {
	return &PatternTool{name: name, family: family, description: description}
}

// Definition returns the MCP tool definition for registration.
func (t *PatternTool) Definition() mcp.Tool {
	return mcp.NewTool(string(t.name),
		mcp.WithDescription(t.description),
		mcp.WithString("topic",
			mcp.Description("Specific topic. Omit to get every topic."),
			mcp.Enum(t.family.Keys()...),
		),
		mcp.WithBoolean("compact",
			mcp.Description("Return rules only, without code examples (saves tokens)"),
			mcp.DefaultBool(false),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle resolves the requested topic. Unknown topics are answered with
// the list of available keys rather than an error.
func (t *PatternTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	compact := req.GetBool("compact", false)
	return mcp.NewToolResultText(patterns.Resolve(t.family, topic, compact)), nil
}
