package server

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"launchpad/internal"
	"launchpad/internal/apperror"
	"launchpad/internal/utils"
	"launchpad/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	ctypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"` // founder or investor
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, apperror.Validation("", "invalid request body"))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(req.Email); err != nil {
		s.respondError(w, apperror.Validation("email", "valid email is required"))
		return
	}
	if len(req.Password) < 8 {
		s.respondError(w, apperror.Validation("password", "password must be at least 8 characters"))
		return
	}

	role := types.Role(req.Role)
	if role != types.RoleFounder && role != types.RoleInvestor {
		role = types.RoleFounder
	}

	input := &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(s.config.CognitoClientID),
		Username: aws.String(req.Email), // use email as username
		Password: aws.String(req.Password),
		UserAttributes: []ctypes.AttributeType{
			{Name: aws.String("email"), Value: aws.String(req.Email)},
			{Name: aws.String("name"), Value: aws.String(req.FullName)},
		},
	}

	resp, err := s.cognitoClient.SignUp(ctx, input)
	if err != nil {
		s.logger.WithError(err).Error("failed to signup user")
		s.respondError(w, apperror.Dependency(err, "signup"))
		return
	}

	profile := &types.Profile{
		ID:       aws.ToString(resp.UserSub),
		Email:    req.Email,
		FullName: utils.NullableString(req.FullName),
		Role:     role,
	}
	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		s.logger.WithError(err).Error("failed to create profile")
		s.respondError(w, apperror.Dependency(err, "create profile"))
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]string{
		"message": "account created, confirm your email to continue",
		"id":      profile.ID,
	})
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, apperror.Validation("", "invalid request body"))
		return
	}

	input := &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: ctypes.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.config.CognitoClientID),
		AuthParameters: map[string]string{
			"USERNAME": req.Email,
			"PASSWORD": req.Password,
		},
	}

	resp, err := s.cognitoClient.InitiateAuth(r.Context(), input)
	if err != nil {
		// NotAuthorizedException, UserNotConfirmedException, etc.
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	if resp.AuthenticationResult == nil || resp.AuthenticationResult.AccessToken == nil {
		s.respondError(w, apperror.Unauthenticated())
		return
	}

	accessToken := aws.ToString(resp.AuthenticationResult.AccessToken)
	expiresIn := int(resp.AuthenticationResult.ExpiresIn)

	encryptedToken, err := s.cookie.Encode(internal.COOKIE_ACCESS_TOKEN_NAME, accessToken)
	if err != nil {
		s.logger.WithError(err).Error("failed to encrypt access token")
		s.respondError(w, apperror.Dependency(err, "seal token"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_ACCESS_TOKEN_NAME,
		Value:    encryptedToken,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   expiresIn,
		Path:     "/",
	})

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "logged in"})
}

func (s *Service) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     internal.COOKIE_ACCESS_TOKEN_NAME,
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}
