package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/ErnestEguez/websitebillennium/internal/application/dto"
	"github.com/ErnestEguez/websitebillennium/internal/domain/entity"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	var in dto.LoginRequest
	fs.StringVar(&in.Email, "email", "", "correo electrónico")
	fs.StringVar(&in.Password, "password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Auth.Login(ctx, in)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al iniciar sesión"))
	}

	fmt.Fprintf(a.Out, "¡Bienvenido, %s!\n", user.Name)
	if user.Role == entity.RoleAdmin {
		fmt.Fprintln(a.Out, "Panel de administración disponible: `portal admin stats`")
	} else {
		fmt.Fprintln(a.Out, "Tus aplicaciones: `portal subscriptions`")
	}

	// Retomar la vista desde la que un guard mandó al login
	if view := a.Sessions.TakeReturnTo(); view != "" {
		fmt.Fprintf(a.Out, "Continúa donde quedaste: %s\n", view)
	}
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	var in dto.RegisterRequest
	fs.StringVar(&in.Name, "name", "", "nombre completo")
	fs.StringVar(&in.Email, "email", "", "correo electrónico")
	fs.StringVar(&in.Password, "password", "", "contraseña (mínimo 6 caracteres)")
	fs.StringVar(&in.ConfirmPassword, "confirm", "", "confirmación de contraseña")
	fs.StringVar(&in.CompanyName, "company", "", "empresa (opcional)")
	fs.StringVar(&in.Phone, "phone", "", "teléfono (opcional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.Auth.Register(ctx, in)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al crear la cuenta"))
	}
	fmt.Fprintf(a.Out, "¡Bienvenido, %s! Tu cuenta ha sido creada.\n", user.Name)
	return nil
}

func (a *App) cmdLogout() error {
	if err := a.Auth.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Sesión cerrada")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context) error {
	user, err := a.Auth.Me(ctx)
	if err != nil {
		return fmt.Errorf("%s", UserError(err, "Error al consultar el perfil"))
	}
	fmt.Fprintf(a.Out, "%s <%s>\n", user.Name, user.Email)
	fmt.Fprintf(a.Out, "rol: %s\n", user.Role)
	if user.CompanyName != "" {
		fmt.Fprintf(a.Out, "empresa: %s\n", user.CompanyName)
	}
	if !user.IsActive {
		fmt.Fprintln(a.Out, "cuenta desactivada")
	}
	return nil
}
