// Package helpers provides Handlebars helpers for the render package.
//
// Helpers are plain name to function maps. Nothing is registered globally;
// a Map is handed to the renderer that needs it:
//
//	reg := helpers.NewRegistry()
//	reg.MustRegister("upper", strings.ToUpper)
//
//	r, err := render.New(tpls, render.WithHelpers(
//		helpers.Merge(helpers.Defaults(), reg.Map(), helpers.Messages(msgs, "en_us")),
//	))
//
// Defaults provides md, jsonify and equals:
//
//	{{{md body}}}
//	{{{jsonify payload space=0}}}
//	{{#equals "good" status}}ok{{else}}not ok{{/equals}}
//
// Messages adds message and plural, bound to messages derived for one locale:
//
//	{{message "greeting" name=user.name}}
//	{{plural "items" cart.count}}
package helpers
