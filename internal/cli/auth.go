package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string
	var password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Oturum aç",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = app.Prefs.RememberEmail()
			}
			if email == "" || password == "" {
				return fmt.Errorf("e-posta ve şifre gereklidir (--email, --password)")
			}

			result, err := app.API.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			app.Prefs.SaveSession(result.AccessToken, result.RefreshToken)
			if remember {
				app.Prefs.SetRememberEmail(email)
			} else {
				app.Prefs.ClearRememberEmail()
			}

			fmt.Fprintf(app.Out, "Hoş geldin, %s!\n", result.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-posta adresi (boşsa hatırlanan adres kullanılır)")
	cmd.Flags().StringVar(&password, "password", "", "şifre")
	cmd.Flags().BoolVar(&remember, "remember", false, "e-posta adresini hatırla")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var email, password, username, fullName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Yeni hesap oluştur",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("e-posta ve şifre gereklidir (--email, --password)")
			}

			result, err := app.API.Register(cmd.Context(), email, password, username, fullName)
			if err != nil {
				return err
			}

			// Registration signs the user in, same as the web flow.
			app.Prefs.SaveSession(result.AccessToken, result.RefreshToken)
			fmt.Fprintf(app.Out, "Kayıt tamamlandı. Hoş geldin, %s!\n", result.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-posta adresi")
	cmd.Flags().StringVar(&password, "password", "", "şifre")
	cmd.Flags().StringVar(&username, "username", "", "kullanıcı adı (boşsa e-postadan türetilir)")
	cmd.Flags().StringVar(&fullName, "name", "", "ad soyad")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Oturumu kapat",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(app, "Çıkış yapmak istediğinize emin misiniz?") {
				fmt.Fprintln(app.Out, "İptal edildi.")
				return nil
			}

			if app.API.Token != "" {
				if err := app.API.Logout(cmd.Context()); err != nil {
					// Local session is cleared regardless.
					fmt.Fprintf(app.Out, "Sunucu oturumu kapatılamadı: %v\n", err)
				}
			}
			app.Prefs.ClearSession()
			app.API.Token = ""
			fmt.Fprintln(app.Out, "Oturum kapatıldı.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "onay sorma")
	return cmd
}

func newPasswordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Şifre işlemleri",
	}
	cmd.AddCommand(newPasswordResetRequestCmd(app))
	cmd.AddCommand(newPasswordUpdateCmd(app))
	return cmd
}

func newPasswordResetRequestCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-request",
		Short: "Şifre sıfırlama talebi gönder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("e-posta gereklidir (--email)")
			}
			if err := app.API.RequestPasswordReset(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Eğer bu adres kayıtlıysa sıfırlama bağlantısı gönderildi.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "e-posta adresi")
	return cmd
}

func newPasswordUpdateCmd(app *App) *cobra.Command {
	var current, newPassword string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Şifreni değiştir",
		RunE: func(cmd *cobra.Command, args []string) error {
			if current == "" || newPassword == "" {
				return fmt.Errorf("mevcut ve yeni şifre gereklidir (--current, --new)")
			}
			if err := app.API.UpdatePassword(cmd.Context(), current, newPassword); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Şifreniz güncellendi.")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "mevcut şifre")
	cmd.Flags().StringVar(&newPassword, "new", "", "yeni şifre")
	return cmd
}

func confirm(app *App, prompt string) bool {
	fmt.Fprintf(app.Out, "%s [e/H]: ", prompt)
	reader := bufio.NewReader(app.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "e" || answer == "evet"
}
