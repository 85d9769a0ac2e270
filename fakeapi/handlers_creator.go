package fakeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) creatorProfile(user *userDoc) map[string]any {
	profile, ok := s.creators[user.ID]
	if !ok {
		profile = map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		}
		s.creators[user.ID] = profile
	}
	return profile
}

func (s *Server) getCreator(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s.creatorProfile(user))
}

func (s *Server) patchCreator(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	var req map[string]any
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	profile := s.creatorProfile(user)
	for k, v := range req {
		profile[k] = v
	}

	return c.JSON(http.StatusOK, profile)
}

func (s *Server) postAvatar(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return detail(c, http.StatusBadRequest, "File is required")
	}

	url := "https://assets.example/avatars/" + user.ID + "/" + file.Filename
	s.creatorProfile(user)["avatarUrl"] = url

	return c.JSON(http.StatusOK, echo.Map{"url": url})
}

func (s *Server) getPortfolio(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	items := s.portfolio[user.ID]
	if items == nil {
		items = []map[string]any{}
	}

	return c.JSON(http.StatusOK, items)
}

func (s *Server) postPortfolio(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return detail(c, http.StatusBadRequest, "Files are required")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return detail(c, http.StatusBadRequest, "Files are required")
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		item := map[string]any{
			"id":  newID("pfl"),
			"url": "https://assets.example/portfolio/" + user.ID + "/" + file.Filename,
		}
		s.portfolio[user.ID] = append(s.portfolio[user.ID], item)
		urls = append(urls, item["url"].(string))
	}

	return c.JSON(http.StatusCreated, echo.Map{"images": urls})
}

func (s *Server) deletePortfolio(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	items := s.portfolio[user.ID]
	for i, item := range items {
		if item["id"] == c.Param("id") {
			s.portfolio[user.ID] = append(items[:i], items[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}

	return detail(c, http.StatusNotFound, "Portfolio item not found")
}

func (s *Server) getCreatorKYC(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	kyc, ok := s.kyc[user.ID]
	if !ok {
		kyc = map[string]any{}
	}

	return c.JSON(http.StatusOK, kyc)
}

func (s *Server) postCreatorKYC(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	var req map[string]any
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	req["status"] = "PENDING"
	s.kyc[user.ID] = req

	return c.JSON(http.StatusOK, req)
}
