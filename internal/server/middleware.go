package server

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// corsHeaders は全レスポンスにCORSヘッダーを付与するミドルウェアを返す
// ローカル開発用途のため全オリジンを許可する
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type")

		c.Next()
	}
}

// accessLog はリクエストごとに1行のアクセスログを標準出力に書き出す
// ミドルウェアを返す。os.Stdoutへの書き込みはバッファリングされないため、
// リダイレクト先でも即座に確認できる
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		r := c.Request
		fmt.Fprintf(os.Stdout, "%s - \"%s %s %s\" %d %d\n",
			time.Now().Format("02/Jan/2006 15:04:05"),
			r.Method, r.URL.Path, r.Proto,
			c.Writer.Status(), c.Writer.Size())
	}
}
