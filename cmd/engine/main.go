// Command engine разрешает один раунд игры: engine <gameType> <gameData>.
// Результат печатается в stdout одной строкой JSON, логи идут в stderr.
package main

import (
	"casino_engine/internal/app"
	"casino_engine/pkg/resp"
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: engine <gameType> <gameData>")
		os.Exit(1)
	}
	gameType, gameData := os.Args[1], os.Args[2]

	out := resolve(gameType, []byte(gameData))
	fmt.Fprintln(os.Stdout, string(out))
}

// resolve ошибки конфигурации тоже превращаются в результат с success=false
func resolve(gameType string, payload []byte) (out []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "engine: %v\n", rec)
			out, _ = resp.Marshal(map[string]any{
				"success": false,
				"error":   fmt.Sprint(rec),
			})
		}
	}()
	return app.NewApp().Resolve(context.Background(), gameType, payload)
}
