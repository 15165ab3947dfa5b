// Package server は、静的ファイルを配信するHTTPサーバーを管理します。
//
// このパッケージは、HTTPサーバーの起動、静的ファイルの解決と配信、
// CORSヘッダーの付与、アクセスログの出力を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 配信ルート配下のファイル・ディレクトリ一覧の配信
//   - 全レスポンスへのCORSヘッダーの付与
//   - 標準出力へのアクセスログ出力
//
// 仕様:
//   - ルーティングにはgin-gonic/ginを使用
//   - ファイルの読み出しはnet/httpのhttp.Dirを使用
//   - グレースフルシャットダウンに対応
//   - ローカル開発用途のため全オリジンを許可
package server
