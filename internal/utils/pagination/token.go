package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 encoded cursor from the creation time and ID of
// the last row on a page. Sorting is (created_at DESC, id DESC), so the pair
// uniquely positions the cursor even when two rows share a timestamp.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into creation time and ID.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return createdAt, parts[1], nil
}
