// Package snapshot encodes the contents of a store as a content addressed
// IPLD graph that can be exported as a CAR archive.
package snapshot

import (
	"context"
	"fmt"
	"io"

	"github.com/nasdf/blogql/core"
	"github.com/nasdf/blogql/storage"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-car/v2"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	"github.com/ipld/go-ipld-prime/linking"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/ipld/go-ipld-prime/traversal/selector"
	"github.com/ipld/go-ipld-prime/traversal/selector/builder"

	// codecs need to be initialized and registered
	_ "github.com/ipld/go-ipld-prime/codec/dagcbor"
)

const (
	UsersFieldName    = "users"
	PostsFieldName    = "posts"
	CommentsFieldName = "comments"
)

var linkPrototype = cidlink.LinkPrototype{Prefix: cid.Prefix{
	Version:  1,    // Usually '1'.
	Codec:    0x71, // dag-cbor -- See the multicodecs table: https://github.com/multiformats/multicodec/
	MhType:   0x13, // sha2-512 -- See the multicodecs table: https://github.com/multiformats/multicodec/
	MhLength: 64,   // sha2-512 hash has a 64-byte sum.
}}

// Snapshot is an immutable content addressed copy of a store.
type Snapshot struct {
	blocks *storage.Memory
	lsys   linking.LinkSystem
	root   datamodel.Link
}

// Build copies every record in the store into a new memory backed snapshot.
//
// The root node is a map of collection names to lists of record links in store order.
func Build(ctx context.Context, store *core.Store) (*Snapshot, error) {
	var users []*core.User
	var posts []*core.Post
	var comments []*core.Comment
	err := store.View(ctx, func(tx *core.Transaction) error {
		users = tx.Users()
		posts = tx.Posts()
		comments = tx.Comments()
		return nil
	})
	if err != nil {
		return nil, err
	}

	blocks := storage.NewMemory()
	lsys := cidlink.DefaultLinkSystem()
	lsys.SetReadStorage(blocks)
	lsys.SetWriteStorage(blocks)

	s := &Snapshot{blocks: blocks, lsys: lsys}

	userLinks, err := storeAll(ctx, s, users, buildUserNode)
	if err != nil {
		return nil, err
	}
	postLinks, err := storeAll(ctx, s, posts, buildPostNode)
	if err != nil {
		return nil, err
	}
	commentLinks, err := storeAll(ctx, s, comments, buildCommentNode)
	if err != nil {
		return nil, err
	}
	rootNode, err := qp.BuildMap(basicnode.Prototype.Map, 3, func(ma datamodel.MapAssembler) {
		qp.MapEntry(ma, UsersFieldName, linkList(userLinks))
		qp.MapEntry(ma, PostsFieldName, linkList(postLinks))
		qp.MapEntry(ma, CommentsFieldName, linkList(commentLinks))
	})
	if err != nil {
		return nil, err
	}
	s.root, err = s.Store(ctx, rootNode)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Root returns the link to the root node of the snapshot.
func (s *Snapshot) Root() datamodel.Link {
	return s.root
}

// Len returns the number of blocks in the snapshot.
func (s *Snapshot) Len() int {
	return s.blocks.Len()
}

// Load returns the node matching the given link.
func (s *Snapshot) Load(ctx context.Context, lnk datamodel.Link) (datamodel.Node, error) {
	return s.lsys.Load(linking.LinkContext{Ctx: ctx}, lnk, basicnode.Prototype.Any)
}

// Store writes the given node to the snapshot and returns its link.
func (s *Snapshot) Store(ctx context.Context, node datamodel.Node) (datamodel.Link, error) {
	return s.lsys.Store(linking.LinkContext{Ctx: ctx}, linkPrototype, node)
}

// Export writes every block reachable from the root encoded as a CAR.
func (s *Snapshot) Export(ctx context.Context, out io.Writer) error {
	root, ok := s.root.(cidlink.Link)
	if !ok {
		return fmt.Errorf("unsupported root link %T", s.root)
	}
	ssb := builder.NewSelectorSpecBuilder(basicnode.Prototype.Any)
	sel := ssb.ExploreRecursive(selector.RecursionLimitNone(), ssb.ExploreAll(ssb.ExploreRecursiveEdge()))
	w, err := car.NewSelectiveWriter(ctx, &s.lsys, root.Cid, sel.Node())
	if err != nil {
		return err
	}
	_, err = w.WriteTo(out)
	return err
}

// Export builds a snapshot of the store and writes it to out as a CAR.
func Export(ctx context.Context, store *core.Store, out io.Writer) (datamodel.Link, error) {
	s, err := Build(ctx, store)
	if err != nil {
		return nil, err
	}
	if err := s.Export(ctx, out); err != nil {
		return nil, err
	}
	return s.Root(), nil
}

func storeAll[T any](ctx context.Context, s *Snapshot, records []*T, build func(*T) (datamodel.Node, error)) ([]datamodel.Link, error) {
	links := make([]datamodel.Link, len(records))
	for i, r := range records {
		n, err := build(r)
		if err != nil {
			return nil, err
		}
		links[i], err = s.Store(ctx, n)
		if err != nil {
			return nil, err
		}
	}
	return links, nil
}

func linkList(links []datamodel.Link) qp.Assemble {
	return qp.List(int64(len(links)), func(la datamodel.ListAssembler) {
		for _, l := range links {
			qp.ListEntry(la, qp.Link(l))
		}
	})
}
