// Package theme loads YAML-defined design tokens and renders them as CSS
// custom properties for server-rendered pages.
//
// A theme file declares colors, spacing steps, corner radii, and the font
// stack:
//
//	name: daylight
//	colors:
//	  background: "#ffffff"
//	  text: "#1a1a1a"
//	  primary: "#2563eb"
//	  border: "#d4d4d8"
//	spacing:
//	  sm: 4px
//	  md: 12px
//	  lg: 24px
//	font:
//	  family: system-ui, sans-serif
//	  size: 16px
//
// CSS() turns the tokens into a deterministic :root block; pages inject it
// once and reference the variables (--color-primary, --spacing-md, ...) from
// their stylesheets.
//
// Holder keeps the current theme behind a read lock and reloads it when the
// file changes, either explicitly via Reload or automatically via Watch,
// which watches the file's directory so atomic saves from editors are picked
// up. OnChange callbacks fan the new theme out to interested parties, such as
// a broadcaster patching open pages over SSE.
package theme
