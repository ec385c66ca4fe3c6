// Package dom inserts rendered markup into an HTML document.
//
// It mirrors the jQuery manipulation methods a client-side renderer would
// use, on top of github.com/PuerkitoBio/goquery:
//
//	doc, err := dom.ParseString(page)
//	err = doc.Apply(".messages", markup, dom.Append)
//	html, err := doc.HTML()
package dom
