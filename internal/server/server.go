package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"haishin/internal/config"
)

// Server は静的ファイル配信HTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	engine     *gin.Engine
	httpServer *http.Server
	root       http.FileSystem
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(corsHeaders(), accessLog(), gin.Recovery())

	s := &Server{
		config: cfg,
		engine: engine,
		// http.Dirがルート外への脱出を防いでくれる
		root: http.Dir(cfg.Static.Root),
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	s.setupRoutes()

	return s
}

// setupRoutes はHTTPルートを設定する
func (s *Server) setupRoutes() {
	// 全パスを静的ファイルとして解決する
	s.engine.GET("/*filepath", s.handleStatic)
	s.engine.HEAD("/*filepath", s.handleStatic)

	// CORSプリフライト用。ヘッダーはミドルウェアが付与する
	s.engine.OPTIONS("/*filepath", s.handleOptions)
}

// handleOptions はプリフライトリクエストに応答する
func (s *Server) handleOptions(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Start はサーバーを起動する
func (s *Server) Start(ctx context.Context) error {
	// 先にバインドし、ポート使用中などの失敗を即座に報告する
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("サーバーの起動に失敗: %w", err)
	}

	// 起動情報を標準出力に表示する
	fmt.Printf("静的ファイルサーバーをポート %d で起動しました\n", s.config.Server.Port)
	fmt.Printf("アクセスURL: http://localhost:%d/\n", s.config.Server.Port)

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの実行に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
	case <-sigCh:
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	fmt.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	return nil
}
