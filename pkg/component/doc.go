// Package component provides server-side view components that render
// Handlebars templates into an HTML document.
//
// TemplateAware pairs a renderer with a dom.Document. TemplateMessage shows a
// model through one template and re-renders it whenever the model changes:
//
//	msg := component.NewTemplateMessage(component.TemplateAware{
//		Renderer:  r,
//		Document:  doc,
//		Container: ".status",
//	}, component.Config{})
//	err := msg.SetModel(map[string]any{"message": "Saved"})
//
// MessageAware binds the message and plural helpers to a MessageLoader:
//
//	c, err := component.NewMessageAware(doc, component.MessageAwareConfig{
//		Templates: tpls,
//		Loader:    loader,
//		Locale:    "de_de",
//	})
//	err = c.RenderMarkup("", "greeting", model, dom.HTML)
package component
