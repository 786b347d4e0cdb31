// Package shadergui is a metadata-driven material inspector for [Ebitengine]
// Kage shaders.
//
// A material declares an ordered list of parameters, each carrying free-form
// annotation strings. The [Inspector] turns those annotations into a nested
// layout of fields, always-open sections, collapsible foldouts and help
// banners, and resolves preset parameters (blend mode, global illumination)
// that set several underlying values from one choice.
//
// # Quick start
//
// Describe the shader's properties in YAML, build a [Material] and hand it
// to [Run], which opens a window with the inspector on the left and a live
// preview on the right:
//
//	def, err := shadergui.LoadShaderDef(data)
//	if err != nil { ... }
//	mat, err := def.NewMaterial()
//	if err != nil { ... }
//	shadergui.Run(mat, shadergui.RunConfig{Title: def.Name, Inspector: def.Config()})
//
// For full control, keep an [EbitenHost] and an [Inspector] in your own
// [ebiten.Game] and render once per Update:
//
//	host.Begin(panel, shadergui.Vec2{})
//	insp.Render(mat)
//
// # Annotations
//
// Each annotation string yields at most one directive:
//
//	Space / Space(12)        vertical gap, default height 8
//	Header(Title)            open an always-open section
//	HeaderEnd                close it
//	Foldout(Title)           open a collapsible section
//	FoldoutEnd               close it
//	Text(message)            informational banner
//	IntRange, Vector2, ...   widget override; the last one on a parameter wins
//
// Malformed annotations are dropped silently (logged at debug level). Only
// one region is active at a time: opening a region closes the open one.
//
// # Hosts
//
// The inspector draws through the [Host] interface and edits through the
// [Resource] interface. [EbitenHost] draws with Ebitengine; [LayoutRecorder]
// records the layout tree and replays queued edits, which makes it the
// natural test double.
//
// # Logging
//
// shadergui is silent by default. Install a [log/slog] logger with
// [SetLogger], or per inspector through [Config.Logger].
//
// [Ebitengine]: https://ebitengine.org
package shadergui
