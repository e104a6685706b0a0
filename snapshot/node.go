package snapshot

import (
	"github.com/nasdf/blogql/core"

	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

func buildUserNode(u *core.User) (datamodel.Node, error) {
	return qp.BuildMap(basicnode.Prototype.Map, 4, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "id", qp.String(u.ID))
		qp.MapEntry(ma, "name", qp.String(u.Name))
		qp.MapEntry(ma, "email", qp.String(u.Email))
		if u.Age != nil {
			qp.MapEntry(ma, "age", qp.Int(int64(*u.Age)))
		} else {
			qp.MapEntry(ma, "age", qp.Null())
		}
	})
}

func buildPostNode(p *core.Post) (datamodel.Node, error) {
	return qp.BuildMap(basicnode.Prototype.Map, 5, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "id", qp.String(p.ID))
		qp.MapEntry(ma, "title", qp.String(p.Title))
		qp.MapEntry(ma, "body", qp.String(p.Body))
		qp.MapEntry(ma, "published", qp.Bool(p.Published))
		qp.MapEntry(ma, "author", qp.String(p.Author))
	})
}

func buildCommentNode(c *core.Comment) (datamodel.Node, error) {
	return qp.BuildMap(basicnode.Prototype.Map, 4, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, "id", qp.String(c.ID))
		qp.MapEntry(ma, "text", qp.String(c.Text))
		qp.MapEntry(ma, "author", qp.String(c.Author))
		qp.MapEntry(ma, "post", qp.String(c.Post))
	})
}
