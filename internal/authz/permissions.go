// Package authz holds the note access rules: a note has one owner and a
// set of delegated editors. The owner can do everything, delegates can
// read and edit but never delete, everyone else is denied on the
// private surface. Decisions are pure functions over (actor, note);
// locating the note (and 404ing a missing id) happens before any of
// these run.
package authz

import "github.com/tavor118/notes/internal/entity"

// Actor identifies the requesting user. Id is meaningful only when
// Authenticated is true.
type Actor struct {
	Id            uint
	Authenticated bool
}

func Anonymous() Actor {
	return Actor{}
}

func UserActor(id uint) Actor {
	return Actor{Id: id, Authenticated: true}
}

// CanRead reports whether the actor may see the note through the
// private (authenticated) surface. The public surface never consults
// this: it is readable by anyone by construction.
func CanRead(actor Actor, note *entity.Note) bool {
	if !actor.Authenticated {
		return false
	}
	return note.OwnerId == actor.Id || note.IsDelegate(actor.Id)
}

// CanWrite reports whether the actor may mutate the note. Delegates are
// included; delete is excluded separately by CanDelete.
func CanWrite(actor Actor, note *entity.Note) bool {
	if !actor.Authenticated {
		return false
	}
	return note.OwnerId == actor.Id || note.IsDelegate(actor.Id)
}

// CanDelete is owner-only. A delegate who can edit the note is still
// denied here.
func CanDelete(actor Actor, note *entity.Note) bool {
	if !actor.Authenticated {
		return false
	}
	return note.OwnerId == actor.Id
}
