package controllers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kyobegeorge57/falcon-finance/models"
	"github.com/kyobegeorge57/falcon-finance/token"
)

// Signup creates a new user from the signup form. The store's
// uniqueness constraint is the final arbiter when two signups race on
// the same username.
func (e *Env) Signup(c *gin.Context) {
	name := c.PostForm("name")
	contact := c.PostForm("contact")
	username := c.PostForm("username")
	password := c.PostForm("password")
	if name == "" || contact == "" || username == "" || password == "" {
		flashAndRedirect(c, "All fields are required", "/signup")
		return
	}

	profileImage := ""
	if fileHeader, err := c.FormFile("dp"); err == nil {
		data, readErr := readUpload(fileHeader)
		if readErr != nil {
			slog.Error("could not read profile image", "error", readErr)
			flashAndRedirect(c, "Could not save profile image", "/signup")
			return
		}
		ref, saveErr := e.Uploads.Save("dp", username, data, fileHeader.Filename)
		if saveErr != nil {
			slog.Error("could not store profile image", "error", saveErr)
			flashAndRedirect(c, "Could not save profile image", "/signup")
			return
		}
		profileImage = ref
	}

	hashedPassword, err := models.HashPassword(password)
	if err != nil {
		slog.Error("could not hash password", "error", err)
		flashAndRedirect(c, "Could not complete signup", "/signup")
		return
	}

	user := models.User{
		Name:         name,
		Contact:      contact,
		Username:     username,
		Password:     hashedPassword,
		ProfileImage: profileImage,
	}
	if err := user.CreateUser(e.DB); err != nil {
		if errors.Is(err, models.ErrDuplicateLogin) {
			flashAndRedirect(c, "Username already taken", "/signup")
			return
		}
		slog.Error("could not create user", "error", err)
		flashAndRedirect(c, "Could not complete signup", "/signup")
		return
	}

	flashAndRedirect(c, "Signup successful! Please log in.", "/index")
}

// Login verifies credentials and establishes the session cookie. An
// unknown username and a wrong password produce the same message.
func (e *Env) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := models.Authenticate(e.DB, username, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			flashAndRedirect(c, "Invalid username or password", "/index")
			return
		}
		slog.Error("could not look up user", "error", err)
		flashAndRedirect(c, "Could not log in", "/index")
		return
	}

	signedToken, err := token.Generate(user.ID, e.Cfg.Server.SecretKey, e.Cfg.Server.ExpirationMinutes)
	if err != nil {
		slog.Error("could not generate session token", "error", err)
		flashAndRedirect(c, "Could not log in", "/index")
		return
	}

	c.SetCookie("auth_token", signedToken, e.Cfg.Server.ExpirationMinutes*60, "/", "", false, true)
	c.Redirect(http.StatusFound, "/homepage")
}

// Logout revokes the current session and clears the cookie. Without a
// cache the cookie expiry alone ends the session.
func (e *Env) Logout(c *gin.Context) {
	if signedToken, err := c.Cookie("auth_token"); err == nil && signedToken != "" && e.Cache != nil {
		if claims, validateErr := token.Validate(signedToken, e.Cfg.Server.SecretKey); validateErr == nil {
			ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
			if ttl > 0 {
				if err := e.Cache.Set(c.Request.Context(), token.RevocationKey(claims.Id), 1, ttl).Err(); err != nil {
					slog.Error("could not revoke session", "error", err)
				}
			}
		}
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/index")
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
