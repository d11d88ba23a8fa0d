package docs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/drive/v3"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

func TestBuildQuery(t *testing.T) {
	start := time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 19, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name string
		r    domain.TimeRange
		want string
	}{
		{
			name: "unbounded",
			r:    domain.TimeRange{},
			want: "mimeType='application/vnd.google-apps.document'",
		},
		{
			name: "start only",
			r:    domain.TimeRange{Start: start},
			want: "mimeType='application/vnd.google-apps.document' and modifiedTime >= '2024-02-19T00:00:00Z'",
		},
		{
			name: "both bounds",
			r:    domain.TimeRange{Start: start, End: end},
			want: "mimeType='application/vnd.google-apps.document' and modifiedTime >= '2024-02-19T00:00:00Z' and modifiedTime <= '2024-02-19T23:59:59Z'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.r))
		})
	}
}

func TestFileToActivity(t *testing.T) {
	file := &drive.File{
		Id:           "doc-1",
		Name:         "Design notes",
		ModifiedTime: "2024-02-19T15:30:00.000Z",
		LastModifyingUser: &drive.User{
			DisplayName: "Alice",
		},
	}

	got := FileToActivity(file)

	assert.Equal(t, "Google Docs", got.Platform)
	assert.Equal(t, "doc-1", got.ActivityID)
	assert.Equal(t, "Alice", got.User)
	assert.Equal(t, "Document", got.FileType)
	assert.Equal(t, "2024-02-19T15:30:00.000Z", got.Timestamp)
	assert.False(t, got.DateExtracted.IsZero())
}

func TestFileToActivity_NoModifyingUser(t *testing.T) {
	got := FileToActivity(&drive.File{Id: "doc-2"})
	assert.Empty(t, got.User)
}
