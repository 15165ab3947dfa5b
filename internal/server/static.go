package server

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// handleStatic はURLパスを配信ルート配下のファイルに解決して応答する。
// 存在しないパスとルート外へ脱出するパスはいずれも404として扱う
func (s *Server) handleStatic(c *gin.Context) {
	// 先頭にスラッシュを補ってからクリーンすることで、
	// ".."による上方向の参照はルートに留まる
	name := path.Clean("/" + c.Param("filepath"))

	f, err := s.root.Open(name)
	if err != nil {
		s.notFound(c)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		s.notFound(c)
		return
	}

	if info.IsDir() {
		// ディレクトリはスラッシュ終端のURLに正規化する
		if !strings.HasSuffix(c.Request.URL.Path, "/") {
			c.Redirect(http.StatusMovedPermanently, c.Request.URL.Path+"/")
			return
		}

		// インデックスファイルがあればそれを配信する
		if s.serveIndexFile(c, name) {
			return
		}

		s.renderListing(c, name, f)
		return
	}

	// Content-Typeの推定・HEAD・Rangeは標準ライブラリに任せる
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// serveIndexFile はディレクトリ内のインデックスファイルの配信を試みる。
// 配信した場合はtrueを返す
func (s *Server) serveIndexFile(c *gin.Context, dirName string) bool {
	if s.config.Static.IndexFile == "" {
		return false
	}

	indexName := path.Join(dirName, s.config.Static.IndexFile)
	idx, err := s.root.Open(indexName)
	if err != nil {
		return false
	}
	defer idx.Close()

	info, err := idx.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), idx)
	return true
}

// renderListing はディレクトリのエントリ一覧をHTMLとして生成する
func (s *Server) renderListing(c *gin.Context, name string, dir http.File) {
	entries, err := dir.Readdir(-1)
	if err != nil {
		s.notFound(c)
		return
	}

	// 名前順に並べる
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var b strings.Builder
	title := html.EscapeString(name)
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <title>ディレクトリ一覧: %s</title>
</head>
<body>
    <h1>ディレクトリ一覧: %s</h1>
    <hr>
    <ul>
`, title, title)

	for _, entry := range entries {
		entryName := entry.Name()
		href := url.PathEscape(entryName)
		if entry.IsDir() {
			entryName += "/"
			href += "/"
		}
		fmt.Fprintf(&b, "        <li><a href=\"%s\">%s</a></li>\n",
			href, html.EscapeString(entryName))
	}

	b.WriteString("    </ul>\n    <hr>\n</body>\n</html>\n")

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// notFound は404レスポンスを返す。クライアントに区別して見せる
// エラー種別はこれだけで、その他の失敗の詳細は伝えない
func (s *Server) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 ファイルが見つかりません\n")
}
