package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
)

type memoFlags struct {
	id         int64
	content    string
	visibility string
	archive    bool
}

// readContent returns the --content flag, or stdin when it is "-".
func (f memoFlags) readContent(cmd *cobra.Command) (string, error) {
	if f.content != "-" {
		return f.content, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func printMemo(cmd *cobra.Command, memo model.Memo) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(memo)
}

func init() {
	pushEnv := new(memoFlags)
	pushCmd := &cobra.Command{
		Use:   "push --id ID [--content TEXT|-] [--visibility V] [--archive]",
		Short: "Push an edited memo back to Memos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pushEnv.id <= 0 {
				return errors.New("--id is required")
			}
			content, err := pushEnv.readContent(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			memo, err := a.uc.Push(ctx, memoSync.PushInput{
				MemoID:     pushEnv.id,
				Content:    content,
				Visibility: model.Visibility(strings.ToUpper(pushEnv.visibility)),
				Archive:    pushEnv.archive,
			})
			if err != nil {
				return err
			}
			return printMemo(cmd, memo)
		},
	}
	pushCmd.Flags().Int64Var(&pushEnv.id, "id", 0, "numeric memo id")
	pushCmd.Flags().StringVar(&pushEnv.content, "content", "", `new content, "-" reads stdin`)
	pushCmd.Flags().StringVar(&pushEnv.visibility, "visibility", "", "PUBLIC, PROTECTED or PRIVATE")
	pushCmd.Flags().BoolVar(&pushEnv.archive, "archive", false, "archive the memo")

	createEnv := new(memoFlags)
	createCmd := &cobra.Command{
		Use:   "create --content TEXT|- [--visibility V]",
		Short: "Create a new memo",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := createEnv.readContent(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			memo, err := a.uc.Create(ctx, memoSync.CreateInput{
				Content:    content,
				Visibility: model.Visibility(strings.ToUpper(createEnv.visibility)),
			})
			if err != nil {
				return err
			}
			return printMemo(cmd, memo)
		},
	}
	createCmd.Flags().StringVar(&createEnv.content, "content", "", `memo content, "-" reads stdin`)
	createCmd.Flags().StringVar(&createEnv.visibility, "visibility", "", "PUBLIC, PROTECTED or PRIVATE (default PRIVATE)")

	rootCmd.AddCommand(pushCmd, createCmd)
}
