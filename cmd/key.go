package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/resetgate"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored Gemini API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Validate and store a Gemini API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cred, err := credentialStore(st).Set(cmd.Context(), args[0])
		if err != nil {
			var verr *credential.ValidationError
			if errors.As(err, &verr) {
				return errors.New(verr.Error())
			}
			return fmt.Errorf("save key: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Đã lưu API Key: %s\n", cred.Masked())
		return nil
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a key is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cred, ok, err := credentialStore(st).Get(cmd.Context())
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		out := cmd.OutOrStdout()
		if !ok {
			fmt.Fprintln(out, "Chưa cấu hình API Key.")
			return nil
		}
		fmt.Fprintf(out, "Đã cấu hình Key: %s\n", cred.Masked())
		return nil
	},
}

var keyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the stored key (requires the security code)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		password, _ := cmd.Flags().GetString("password")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out := cmd.OutOrStdout()
		gate := resetgate.New(credentialStore(st), resetgate.Options{
			Secret:       resetSecret(),
			OnKeyRemoved: func() { fmt.Fprintln(out, "Đã xóa API Key.") },
		})
		if err := gate.Open(ctx); err != nil {
			if errors.Is(err, resetgate.ErrNoCredential) {
				fmt.Fprintln(out, "Chưa cấu hình API Key.")
				return nil
			}
			return err
		}

		if password == "" {
			fmt.Fprint(out, "Mã bảo mật: ")
			password, err = readSecret(cmd.InOrStdin())
			fmt.Fprintln(out)
			if err != nil {
				gate.Cancel()
				return fmt.Errorf("read security code: %w", err)
			}
		}

		if err := gate.Submit(ctx, password); err != nil {
			if resetgate.IsResetError(err) {
				return errors.New(err.Error())
			}
			return err
		}
		return nil
	},
}

// readSecret reads one line from in. A terminal does not echo it.
func readSecret(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		b, err := term.ReadPassword(f.Fd())
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// resetSecret returns the configured security code, or "" for the default.
func resetSecret() string {
	return os.Getenv("TOANVUI_RESET_SECRET")
}

func init() {
	keyResetCmd.Flags().StringP("password", "p", "", "Security code (prompted when omitted)")

	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyStatusCmd)
	keyCmd.AddCommand(keyResetCmd)
}
