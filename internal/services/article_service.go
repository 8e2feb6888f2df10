// internal/services/article_service.go
package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleService serves pre-rendered HTML pages stored as <path>.html
// under a root directory.
type ArticleService struct {
	root fs.FS
}

func NewArticleService(dir string) *ArticleService {
	return NewArticleServiceFS(os.DirFS(dir))
}

func NewArticleServiceFS(root fs.FS) *ArticleService {
	return &ArticleService{root: root}
}

// GetArticle returns the HTML for an article path such as
// "guides/best-gba-emulators". Paths that leave the root are not found.
func (s *ArticleService) GetArticle(articlePath string) ([]byte, error) {
	articlePath = strings.Trim(articlePath, "/")
	if articlePath == "" {
		return nil, ErrArticleNotFound
	}

	name := articlePath + ".html"
	if !fs.ValidPath(name) {
		return nil, ErrArticleNotFound
	}

	content, err := fs.ReadFile(s.root, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to read article %s: %w", name, err)
	}
	return content, nil
}
