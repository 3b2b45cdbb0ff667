package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavor118/notes/internal/entity"
)

func sharedNote() *entity.Note {
	return &entity.Note{
		Id:           1,
		Content:      "shared note",
		OwnerId:      10,
		DelegatedIds: []uint{20, 30},
	}
}

func TestOwnerHasFullAccess(t *testing.T) {
	note := sharedNote()
	owner := UserActor(10)

	assert.True(t, CanRead(owner, note))
	assert.True(t, CanWrite(owner, note))
	assert.True(t, CanDelete(owner, note))
}

func TestDelegateCanEditButNotDelete(t *testing.T) {
	note := sharedNote()
	delegate := UserActor(20)

	assert.True(t, CanRead(delegate, note))
	assert.True(t, CanWrite(delegate, note))
	assert.False(t, CanDelete(delegate, note))
}

func TestStrangerIsDenied(t *testing.T) {
	note := sharedNote()
	stranger := UserActor(99)

	assert.False(t, CanRead(stranger, note))
	assert.False(t, CanWrite(stranger, note))
	assert.False(t, CanDelete(stranger, note))
}

func TestAnonymousIsDenied(t *testing.T) {
	note := sharedNote()
	anon := Anonymous()

	assert.False(t, CanRead(anon, note))
	assert.False(t, CanWrite(anon, note))
	assert.False(t, CanDelete(anon, note))
}

// Permission levels nest: delete implies write implies read, for every
// actor. The converse must not hold for delegates.
func TestPermissionImplicationChain(t *testing.T) {
	note := sharedNote()
	actors := []Actor{
		Anonymous(),
		UserActor(10),
		UserActor(20),
		UserActor(30),
		UserActor(99),
	}

	for _, actor := range actors {
		if CanDelete(actor, note) {
			assert.True(t, CanWrite(actor, note), "delete implies write for actor %d", actor.Id)
		}
		if CanWrite(actor, note) {
			assert.True(t, CanRead(actor, note), "write implies read for actor %d", actor.Id)
		}
	}

	// Strictness: at least one actor can write but not delete.
	delegate := UserActor(30)
	assert.True(t, CanWrite(delegate, note))
	assert.False(t, CanDelete(delegate, note))
}

func TestNoteWithoutDelegates(t *testing.T) {
	note := &entity.Note{Id: 2, Content: "solo", OwnerId: 10}

	assert.True(t, CanDelete(UserActor(10), note))
	assert.False(t, CanRead(UserActor(20), note))
}
