package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/testutil"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	created, err := repo.Create(dbc, []*types.User{
		{
			Name:     "A B",
			Email:    " UserRepo@Example.com ",
			Password: "pw",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 user, got %d", len(created))
	}
	if created[0].ID == uuid.Nil || created[0].Role != types.RoleUser {
		t.Fatalf("Create: expected generated id and default role, got %+v", created[0])
	}
	if created[0].Email != "userrepo@example.com" {
		t.Fatalf("Create: expected normalized email, got %q", created[0].Email)
	}

	gotByIDs, err := repo.GetByIDs(dbc, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}

	gotByEmails, err := repo.GetByEmails(dbc, []string{"USERREPO@example.com"})
	if err != nil {
		t.Fatalf("GetByEmails: %v", err)
	}
	if len(gotByEmails) != 1 || gotByEmails[0].ID != created[0].ID {
		t.Fatalf("GetByEmails: unexpected result: %+v", gotByEmails)
	}

	exists, err := repo.EmailExists(dbc, created[0].Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}
	exists, err = repo.EmailExists(dbc, "does-not-exist@example.com")
	if err != nil {
		t.Fatalf("EmailExists(nonexistent): %v", err)
	}
	if exists {
		t.Fatalf("EmailExists(nonexistent): expected false")
	}

	missing, err := repo.GetByID(dbc, uuid.New())
	if err != nil || missing != nil {
		t.Fatalf("GetByID(missing): expected nil, nil; got %+v, %v", missing, err)
	}

	ok, err := repo.UpdateRole(dbc, created[0].ID, types.RoleAdmin)
	if err != nil || !ok {
		t.Fatalf("UpdateRole: ok=%v err=%v", ok, err)
	}
	if err := repo.UpdateProfilePicture(dbc, created[0].ID, "https://cdn.example.com/a.png"); err != nil {
		t.Fatalf("UpdateProfilePicture: %v", err)
	}
	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Role != types.RoleAdmin || got.ProfilePicture != "https://cdn.example.com/a.png" {
		t.Fatalf("GetByID: updates not applied: %+v", got)
	}

	ids, err := repo.ListIDs(dbc)
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != created[0].ID {
		t.Fatalf("ListIDs: unexpected %v", ids)
	}

	ok, err = repo.Delete(dbc, created[0].ID)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(dbc, created[0].ID)
	if err != nil || ok {
		t.Fatalf("Delete(again): expected false, got ok=%v err=%v", ok, err)
	}
}
