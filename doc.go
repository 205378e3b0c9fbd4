// Package icondata aggregates independent SVG icon sets behind one selector
// type, [Icon], and one render record, [IconData].
//
// It is meant for authors of UI component libraries: accept an Icon as a
// parameter, project it to IconData at render time, and emit the SVG.
//
//	func Button(label string, icon icondata.Icon) templ.Component {
//	    data := icondata.Data(icon)
//	    ...
//	}
//
//	Button("Upload", icondata.FromAi(icondata.AiFileImageTwotone))
//
// # Icon Sets
//
// Each set lives in its own package under sets/ (sets/ai, sets/lu, ...) and
// declares an enumeration named after its two-character prefix:
//
//	type AiIcon uint16
//
//	const (
//	    AiFileImageTwotone AiIcon = iota
//	    ...
//	)
//
// Every value projects to a pre-baked IconData through its IconData method.
// Sets depend only on the core package, never on each other.
//
// # Feature Gating
//
// Sets are opt-in through build tags named after their prefix:
//
//	go build -tags Ai,Lu ./...
//
// With the Ai tag this package re-exports AiIcon and every Ai identifier,
// provides FromAi and registers the Ai arm. Without it none of these exist
// and sets/ai is not linked. The icondata_all tag enables every set.
// CustomIcon and IconData are always available.
//
// # The Selector
//
// Icon is an open tagged union implemented as an interface: the dynamic
// type is the arm. Case analyses must keep a default branch because sets
// are added in minor revisions:
//
//	switch v := icon.(type) {
//	case icondata.AiIcon:
//	    ...
//	case icondata.CustomIcon:
//	    ...
//	default:
//	    ...
//	}
//
// Icons compare with == (arm and payload), work as map keys, and order
// with [Compare]: by set in catalogue order with Custom last, then by
// variant declaration order or, for custom icons, field by field.
//
// # Custom Icons
//
// [CustomIcon] carries a hand-authored record through the same channel:
//
//	icondata.FromCustom(icondata.CustomIcon{
//	    ViewBox: icondata.Value("0 0 16 16"),
//	    Data:    `<path d="M0 0h1v1H0z"/>`,
//	})
//
// # Companion Packages
//
//   - codec: JSON and MessagePack encoding of selectors
//   - catalog: enumeration of enabled sets for documentation
//   - render: templ components rendering an Icon as inline SVG, and an
//     HTTP server for standalone SVG documents
//   - lib/encoding: signed or encrypted references to icons, used in URLs
//   - adapters/echo: mounts the icon server on Echo
//   - lib/shorthand: rewrites icon(AiFileImageTwotone) into
//     icondata.Icon(icondata.AiFileImageTwotone)
//   - lib/generator and cmd/icondata: generation of the set packages
//
// Nothing in this package allocates for icon payloads; every string is a
// program-lifetime constant.
package icondata
