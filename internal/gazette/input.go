package gazette

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natscan/natscan/internal/model"
)

// inputLine is one article in a JSON Lines input file.
type inputLine struct {
	ID          string `json:"id"`
	ArticleText string `json:"articleText"`
}

// ReadArticles parses articles from a JSON Lines stream, one article
// object per line. Blank lines are skipped.
func ReadArticles(r io.Reader) ([]*model.Article, error) {
	var articles []*model.Article

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var in inputLine
		if err := json.Unmarshal([]byte(line), &in); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		articles = append(articles, model.NewArticle(in.ID, in.ArticleText))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

// ReadArticleFile reads a JSON Lines article file from disk.
func ReadArticleFile(path string) ([]*model.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return ReadArticles(f)
}
