package mapper

import (
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
	usuariomapper "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/http/mapper"
)

// Register is the payload of POST /auth/register.
type Register struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Nome     string `json:"nome" validate:"required,max=100"`
}

// Login is the payload of POST /auth/login.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Token is the response of POST /auth/login.
type Token struct {
	AccessToken string                `json:"access_token"`
	TokenType   string                `json:"token_type"`
	ExpiresIn   int64                 `json:"expires_in"`
	Usuario     usuariomapper.Usuario `json:"usuario"`
}

func ToRegisterInput(in Register) ports.RegisterInput {
	return ports.RegisterInput{Nome: in.Nome, Email: in.Email, Password: in.Password}
}

func FromLoginResult(result *ports.LoginResult) Token {
	if result == nil {
		return Token{}
	}
	return Token{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
		Usuario:     usuariomapper.FromDomain(result.Usuario),
	}
}
