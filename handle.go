package vg

import "fmt"

// handleRef resolves the engine handle behind a wrapper.
type handleRef interface {
	handle() (Handle, error)
}

// owner holds a handle created by this package and releases it exactly
// once.
type owner struct {
	ctx     *Context
	e       Engine
	h       Handle
	kind    string
	release func(Engine, Handle)
}

// newOwner takes ownership of h and records it in the context's index of
// live handles.
func newOwner(ctx *Context, h Handle, kind string, release func(Engine, Handle)) *owner {
	o := &owner{ctx: ctx, e: ctx.e, h: h, kind: kind, release: release}
	if ctx.owned == nil {
		ctx.owned = make(map[Handle]*owner)
	}
	ctx.owned[h] = o
	return o
}

func (o *owner) handle() (Handle, error) {
	if o.h == InvalidHandle {
		return InvalidHandle, fmt.Errorf("%w: %s", ErrDestroyed, o.kind)
	}
	return o.h, nil
}

// destroy releases the handle. Later calls do nothing.
func (o *owner) destroy() error {
	if o.h == InvalidHandle {
		return nil
	}
	h := o.h
	o.h = InvalidHandle
	if o.ctx.owned[h] == o {
		delete(o.ctx.owned, h)
	}
	Logger().Debug("vg: releasing handle", "kind", o.kind, "handle", uint32(h))
	return call(o.e, "destroy "+o.kind, func() { o.release(o.e, h) })
}

// borrowed is a handle observed from the engine. It is never released by
// this package. A handle owned by a wrapper of the same context is tied to
// that owner and stops resolving once the owner is destroyed.
type borrowed struct {
	h   Handle
	own *owner
}

// borrow wraps a handle returned by the engine.
func (c *Context) borrow(h Handle) borrowed {
	return borrowed{h: h, own: c.owned[h]}
}

func (b borrowed) handle() (Handle, error) {
	if b.own != nil {
		if _, err := b.own.handle(); err != nil {
			return InvalidHandle, err
		}
	}
	return b.h, nil
}

// handleOf returns the handle of ref, or InvalidHandle once released.
func handleOf(ref handleRef) Handle {
	h, err := ref.handle()
	if err != nil {
		return InvalidHandle
	}
	return h
}

// Object is anything backed by an engine handle.
type Object interface {
	Handle() Handle
}

// SameObject reports whether a and b refer to one live engine object.
func SameObject(a, b Object) bool {
	ha, hb := a.Handle(), b.Handle()
	return ha != InvalidHandle && ha == hb
}
