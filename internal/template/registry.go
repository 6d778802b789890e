package template

// DefaultID is the template selected when a request names no template or an
// unknown one.
const DefaultID = "template1"

var registry = []*Template{
	{
		ID:                  "template1",
		Name:                "Modern Left Sidebar",
		DefaultPrimaryColor: "#1E293B",
		screen:              mustParse("template1_body", "template1_body.gohtml"),
		export:              mustParse("template1_export.gohtml", "template1_export.gohtml", "template1_body.gohtml"),
	},
	{
		ID:                  "template2",
		Name:                "Professional Top Header",
		DefaultPrimaryColor: "#2C3E50",
		screen:              mustParse("template2_body", "template2_body.gohtml"),
		export:              mustParse("template2_export.gohtml", "template2_export.gohtml", "template2_body.gohtml"),
	},
	{
		ID:                  "template4",
		Name:                "Minimalist Clean",
		DefaultPrimaryColor: "#000000",
		screen:              mustParse("template4_body", "template4_body.gohtml"),
		export:              mustParse("template4_export.gohtml", "template4_export.gohtml", "template4_body.gohtml"),
	},
	{
		ID:                  "template6",
		Name:                "ATS Clean",
		DefaultPrimaryColor: "#000000",
		screen:              mustParse("template6_body", "template6_body.gohtml"),
		export:              mustParse("template6_export.gohtml", "template6_export.gohtml", "template6_body.gohtml"),
	},
}

// List returns the catalog in its stable presentation order.
func List() []*Template {
	out := make([]*Template, len(registry))
	copy(out, registry)
	return out
}

// Get resolves a template id. Unknown or empty ids fall back to the default
// template so a stale client selection degrades to a rendered resume instead
// of an error.
func Get(id string) *Template {
	for _, t := range registry {
		if t.ID == id {
			return t
		}
	}
	return Get(DefaultID)
}
