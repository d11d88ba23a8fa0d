package docs

import (
	"time"

	"google.golang.org/api/drive/v3"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// platform is the Platform value stamped on every Docs record.
const platform = "Google Docs"

// fileType is the only file type this extractor reports.
const fileType = "Document"

// FileToActivity shapes a Drive file into a Docs activity record.
func FileToActivity(file *drive.File) domain.DocActivity {
	return domain.DocActivity{
		Platform:      platform,
		ActivityID:    file.Id,
		User:          modifyingUser(file),
		FileType:      fileType,
		Timestamp:     file.ModifiedTime,
		DateExtracted: time.Now().UTC(),
	}
}

func modifyingUser(file *drive.File) string {
	if file.LastModifyingUser == nil {
		return ""
	}
	return file.LastModifyingUser.DisplayName
}
