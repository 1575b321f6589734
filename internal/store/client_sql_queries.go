package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-license-keeper/models"
)

const verificationsTable = "verifications"

var verificationColumns = []string{"id", "content_id", "token_id", "wallet_address", "valid", "verified_at"}

// sqlite uses ? placeholders.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertVerificationQuery(v models.Verification) (string, []any, error) {
	return sqlBuilder.Insert(verificationsTable).
		Columns("content_id", "token_id", "wallet_address", "valid", "verified_at").
		Values(v.ContentID, v.TokenID, v.WalletAddress, v.Valid, v.VerifiedAt.UTC()).
		ToSql()
}

func buildLastVerificationQuery(contentID, tokenID string) (string, []any, error) {
	return sqlBuilder.Select(verificationColumns...).
		From(verificationsTable).
		Where(sq.Eq{"content_id": contentID, "token_id": tokenID}).
		OrderBy("verified_at DESC", "id DESC").
		Limit(1).
		ToSql()
}

func buildPruneVerificationsQuery(before time.Time) (string, []any, error) {
	return sqlBuilder.Delete(verificationsTable).
		Where(sq.Lt{"verified_at": before.UTC()}).
		ToSql()
}
