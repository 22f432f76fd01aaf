/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package host

import (
	"context"
	"strconv"

	"github.com/suparena/geostore/errors"
	"github.com/suparena/geostore/registry"
)

// Entity is anything bound to a content record.
type Entity interface {
	ID() int64
	Post() *Post
}

type refKind uint8

const (
	refAmbient refKind = iota
	refID
	refPost
	refEntity
)

// Ref is a loosely typed reference to an entity: a numeric id, a content
// record, an existing entity, or (the zero value) the ambient current item.
type Ref struct {
	kind   refKind
	id     int64
	post   *Post
	entity Entity
}

// Ambient refers to the current item carried by the context.
func Ambient() Ref { return Ref{} }

// ByID refers to the content record with the given id.
func ByID(id int64) Ref { return Ref{kind: refID, id: id} }

// ByPost refers to an already loaded content record.
func ByPost(p *Post) Ref { return Ref{kind: refPost, post: p} }

// ByEntity refers to the content record of an existing entity.
func ByEntity(e Entity) Ref { return Ref{kind: refEntity, entity: e} }

// IsAmbient reports whether r is the zero reference.
func (r Ref) IsAmbient() bool { return r.kind == refAmbient }

// Bind returns the id and, when already known, the post this reference points
// to, without asking the content provider. The ambient reference binds to the
// current item of ctx.
func (r Ref) Bind(ctx context.Context) (int64, *Post) {
	switch r.kind {
	case refID:
		if r.id < 0 {
			return 0, nil
		}
		return r.id, nil
	case refPost:
		if r.post == nil {
			return 0, nil
		}
		return r.post.ID, r.post
	case refEntity:
		if r.entity == nil {
			return 0, nil
		}
		return r.entity.ID(), r.entity.Post()
	}
	if p, ok := CurrentPost(ctx); ok {
		return p.ID, p
	}
	return 0, nil
}

func (r Ref) String() string {
	switch r.kind {
	case refID:
		return "id:" + strconv.FormatInt(r.id, 10)
	case refPost:
		if r.post != nil {
			return "post:" + strconv.FormatInt(r.post.ID, 10)
		}
		return "post:nil"
	case refEntity:
		if r.entity != nil {
			return "entity:" + strconv.FormatInt(r.entity.ID(), 10)
		}
		return "entity:nil"
	}
	return "current"
}

// Resolver implements the lookup steps shared by the entity factories.
type Resolver struct {
	Content    ContentProvider
	Classifier Classifier
}

// ResolvePost determines the content record a reference points to.
// Numeric and entity references are re-fetched from the content provider.
func (r Resolver) ResolvePost(ctx context.Context, ref Ref) (*Post, error) {
	var id int64
	switch ref.kind {
	case refAmbient:
		if p, ok := CurrentPost(ctx); ok {
			return p, nil
		}
		return nil, errors.NewNotFoundError("post", ref.String())
	case refPost:
		if ref.post == nil {
			return nil, errors.NewNotFoundError("post", ref.String())
		}
		return ref.post, nil
	case refID:
		id = ref.id
	case refEntity:
		if ref.entity == nil {
			return nil, errors.NewNotFoundError("post", ref.String())
		}
		id = ref.entity.ID()
	}

	if id <= 0 || r.Content == nil {
		return nil, errors.NewNotFoundError("post", ref.String())
	}
	p, err := r.Content.Post(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch post %d", id)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("post", ref.String())
	}
	return p, nil
}

// ResolveType picks the type key of post: the explicit type when given,
// then the type stored on the record, then the slug of the first term of
// taxonomy. It returns "" when none of them yields a type.
func (r Resolver) ResolveType(ctx context.Context, post *Post, explicit, taxonomy string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if post == nil {
		return "", nil
	}
	if post.Type != "" {
		return post.Type, nil
	}
	if r.Classifier == nil {
		return "", nil
	}
	terms, err := r.Classifier.Terms(ctx, post.ID, taxonomy)
	if err != nil {
		return "", errors.Wrapf(err, "fetch %s terms of post %d", taxonomy, post.ID)
	}
	if len(terms) == 0 {
		return "", nil
	}
	return registry.Slug(terms[0].Name), nil
}
