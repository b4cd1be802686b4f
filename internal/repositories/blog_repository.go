package repositories

import (
	"database/sql"
	"errors"

	intconfig "hotelbooking/internal/config"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/domain/models"
)

type BlogRepository struct {
	DB *sql.DB
}

func (r BlogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const blogSelect = `
	SELECT b.id, b.author_id, u.username, b.title, b.content,
	       COALESCE(b.image,''), b.is_published,
	       (SELECT COUNT(*) FROM blog_likes bl WHERE bl.blog_id = b.id),
	       DATE_FORMAT(b.created_at, '%Y-%m-%d %H:%i:%s'),
	       DATE_FORMAT(b.updated_at, '%Y-%m-%d %H:%i:%s')
	FROM blogs b
	JOIN users u ON u.id = b.author_id
`

func scanBlog(row interface{ Scan(...any) error }) (models.Blog, error) {
	var b models.Blog
	err := row.Scan(
		&b.ID, &b.AuthorID, &b.AuthorName, &b.Title, &b.Content,
		&b.Image, &b.IsPublished, &b.Likes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// ListPublished returns a newest-first page of published posts.
func (r BlogRepository) ListPublished(page, pageSize int) ([]models.Blog, int, error) {
	db := r.db()

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM blogs WHERE is_published = 1`).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	rows, err := db.Query(blogSelect+`
	WHERE b.is_published = 1
	ORDER BY b.id DESC
	LIMIT ? OFFSET ?
	`, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, b)
	}
	return posts, total, rows.Err()
}

func (r BlogRepository) GetByID(id int64) (models.Blog, error) {
	b, err := scanBlog(r.db().QueryRow(blogSelect+`
	WHERE b.id = ? LIMIT 1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, domain.NotFoundError{Resource: "blog post"}
		}
		return models.Blog{}, err
	}
	return b, nil
}

// ListComments returns a post's comments newest-first.
func (r BlogRepository) ListComments(blogID int64) ([]models.Comment, error) {
	rows, err := r.db().Query(`
		SELECT c.id, c.blog_id, c.user_id, u.username, c.content, c.is_approved,
		       DATE_FORMAT(c.created_at, '%Y-%m-%d %H:%i:%s')
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = ?
		ORDER BY c.created_at DESC, c.id DESC
	`, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.ID, &c.BlogID, &c.UserID, &c.UserName,
			&c.Content, &c.IsApproved, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CreateComment inserts an auto-approved comment.
func (r BlogRepository) CreateComment(blogID, userID int64, content string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO comments (blog_id, user_id, content, is_approved, created_at, updated_at)
		VALUES (?, ?, ?, 1, NOW(), NOW())
	`, blogID, userID, content)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ToggleLike flips the user's membership in the liked-by set. The DELETE
// first, INSERT only when nothing was deleted sequence runs in one
// transaction so a double submission cannot create a duplicate edge.
func (r BlogRepository) ToggleLike(blogID, userID int64) (bool, int, error) {
	db := r.db()

	tx, err := db.Begin()
	if err != nil {
		return false, 0, err
	}

	res, err := tx.Exec(`DELETE FROM blog_likes WHERE blog_id = ? AND user_id = ?`, blogID, userID)
	if err != nil {
		_ = tx.Rollback()
		return false, 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return false, 0, err
	}

	liked := false
	if deleted == 0 {
		if _, err := tx.Exec(`INSERT INTO blog_likes (blog_id, user_id) VALUES (?, ?)`, blogID, userID); err != nil {
			_ = tx.Rollback()
			return false, 0, err
		}
		liked = true
	}

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM blog_likes WHERE blog_id = ?`, blogID).Scan(&count); err != nil {
		_ = tx.Rollback()
		return false, 0, err
	}

	if err := tx.Commit(); err != nil {
		return false, 0, err
	}
	return liked, count, nil
}
