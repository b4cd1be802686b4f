package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestToggleLikeAddsThenRemoves(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BlogRepository{DB: db}

	// first toggle: not a member yet, so the delete hits nothing and we insert
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM blog_likes").WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO blog_likes").WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	liked, count, err := repo.ToggleLike(1, 5)
	if err != nil {
		t.Fatalf("first toggle error: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("first toggle: liked=%v count=%d, want liked=true count=1", liked, count)
	}

	// second toggle: the delete removes the edge, no insert happens
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM blog_likes").WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	liked, count, err = repo.ToggleLike(1, 5)
	if err != nil {
		t.Fatalf("second toggle error: %v", err)
	}
	if liked || count != 0 {
		t.Fatalf("second toggle: liked=%v count=%d, want liked=false count=0", liked, count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListCommentsNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	repo := BlogRepository{DB: db}

	mock.ExpectQuery("FROM comments").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "blog_id", "user_id", "username", "content", "is_approved", "created_at",
		}).
			AddRow(2, 1, 5, "alice", "second", true, "2024-01-02 10:00:00").
			AddRow(1, 1, 6, "bob", "first", true, "2024-01-01 10:00:00"))

	comments, err := repo.ListComments(1)
	if err != nil {
		t.Fatalf("ListComments error: %v", err)
	}
	if len(comments) != 2 || comments[0].Content != "second" {
		t.Fatalf("unexpected comments: %+v", comments)
	}
}
