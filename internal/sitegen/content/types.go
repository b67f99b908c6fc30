package content

// Framework is one of the fixed target web frameworks the catalog supports.
type Framework struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category is a named grouping of snippets within a framework.
type Category struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Snippets    []Snippet `json:"snippets"`
}

// Snippet is a single named, reusable code example belonging to one
// category and framework.
type Snippet struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	Description  string   `json:"description"`
	Purpose      string   `json:"purpose"`
	Features     []string `json:"features"`
	Usage        string   `json:"usage"`
	Output       string   `json:"output"`
	Dependencies []string `json:"dependencies"`
	Command      string   `json:"command"`
}

// Title returns the snippet's display name, falling back to its name.
func (s Snippet) Title() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}

// categoryDoc is the on-disk shape of a category document. Snippets may be
// listed flat or nested under subcategory groups; loading flattens both
// into a single ordered list.
type categoryDoc struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Snippets      []Snippet     `json:"snippets"`
	Subcategories []subcategory `json:"subcategories"`
}

type subcategory struct {
	Name     string    `json:"name"`
	Snippets []Snippet `json:"snippets"`
}

// indexDoc lists the category files of a framework's content directory.
type indexDoc struct {
	Categories []string `json:"categories"`
}
