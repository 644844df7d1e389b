package httpapi

import (
	"errors"
	"net/http"

	"github.com/akosarev/notekeeper/internal/common"
)

type createAccountRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {

	var req createAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Fullname == "" {
		writeError(w, http.StatusBadRequest, "Full name is required")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Fullname, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			// contract quirk: a taken email answers 200, not 409
			writeError(w, http.StatusOK, "User already exist")
			return
		}
		s.logger.Error(r.Context(), "create account failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	s.logger.Info(r.Context(), "account created", "user_id", user.ID.Hex())

	writeJSON(w, http.StatusOK, envelope{
		User:        user,
		AccessToken: token,
		Message:     "Registration Successfull",
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			// unknown user is a 200 with the error flag set
			writeError(w, http.StatusOK, "User does not exist.")
		case errors.Is(err, common.ErrorInvalidCredentials):
			writeError(w, http.StatusBadRequest, "Invalid Credentials")
		default:
			s.logger.Error(r.Context(), "login failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Message:     "Login Successfull",
		Email:       req.Email,
		AccessToken: token,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {

	claim := userFromContext(r.Context())

	user, err := s.users.Get(r.Context(), claim.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// the token outlived its owner
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.logger.Error(r.Context(), "get user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		User:    user.Sanitize(),
		Message: "",
	})
}
