package fakeapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) postSignup(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	email := strings.ToLower(req.Email)
	if _, exists := s.users[email]; exists {
		return detail(c, http.StatusBadRequest, "Email already registered")
	}

	role := strings.ToUpper(req.Role)
	if role == "" {
		role = "CREATOR"
	}

	user := &userDoc{
		ID:       newID("usr"),
		Name:     req.Name,
		Email:    email,
		Role:     role,
		Password: req.Password,
	}
	s.users[email] = user

	return c.JSON(http.StatusCreated, echo.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (s *Server) postLogin(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	user, ok := s.users[strings.ToLower(req.Email)]
	if !ok || user.Password != req.Password {
		return detail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	token := uuid.NewString()
	s.tokens[token] = user.ID

	return c.JSON(http.StatusOK, echo.Map{"access_token": token})
}

func (s *Server) getMe(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}
