package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, name, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createDocument = `INSERT INTO documents (user_id, filename, filetype)
    VALUES ($1, $2, $3)
    RETURNING document_id, user_id, filename, filetype, uploaded_at;`

	findDocumentByID = `SELECT document_id, user_id, filename, filetype, uploaded_at
    FROM documents
    WHERE document_id = $1;`

	deleteDocumentByID = `DELETE FROM documents
    WHERE document_id = $1
    RETURNING document_id, user_id, filename, filetype, uploaded_at;`

	findProfileByUserID = `SELECT profile_id, user_id, image, content_type, uploaded_at
    FROM profiles
    WHERE user_id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectDocumentsByUserQuery builds the SELECT returning every document
// owned by the given user, newest upload first.
func buildSelectDocumentsByUserQuery(userID int64) (string, []any, error) {
	return psql.
		Select("document_id", "user_id", "filename", "filetype", "uploaded_at").
		From("documents").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("uploaded_at DESC").
		ToSql()
}

// buildUpsertProfileQuery builds the INSERT … ON CONFLICT upsert that keeps
// at most one profile row per user. The conflict target is the unique
// user_id column; on conflict the image, content type, and upload timestamp
// are replaced.
func buildUpsertProfileQuery(userID int64, image []byte, contentType string) (string, []any, error) {
	return psql.
		Insert("profiles").
		Columns("user_id", "image", "content_type").
		Values(userID, image, contentType).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
    SET image = EXCLUDED.image, content_type = EXCLUDED.content_type, uploaded_at = NOW()
    RETURNING profile_id, user_id, content_type, uploaded_at`).
		ToSql()
}
