package mcts

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot renders the live tree, starting from the root, as a graphviz dot graph.
func (t *MCTS) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	var buf bytes.Buffer
	stack := []naughty{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodeFromNaughty(id)

		if err := tmpl.Execute(&buf, n); err != nil {
			return "", errors.Wrapf(err, "Unable to render node %d", id)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		if err := g.AddNode("G", nodeName(id), attrs); err != nil {
			return "", errors.WithStack(err)
		}
		buf.Reset()

		if n.parent != nilNode {
			if err := g.AddEdge(nodeName(n.parent), nodeName(id), true, nil); err != nil {
				return "", errors.WithStack(err)
			}
		}
		kids := t.kids(id)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return g.String(), nil
}

func nodeName(id naughty) string { return fmt.Sprintf("n%d", id) }

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node ID</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>Visits</TD><TD>{{.Visits}}</TD></TR>
<TR><TD>Q</TD><TD>{{printf "%.3f" .Q}}</TD></TR>
<TR><TD>Prior</TD><TD>{{printf "%.3f" .Prior}}</TD></TR>
</TABLE>
>`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("name").Parse(tmplRaw))
}
