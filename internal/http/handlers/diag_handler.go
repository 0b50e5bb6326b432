package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"chiragbattery/internal/config"
	"chiragbattery/internal/repos"
)

const maxCollections = 10

type DiagHandler struct {
	Store repos.Store
}

type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// GET /test always answers 200; failures become descriptive strings.
func (h *DiagHandler) Test(c *fiber.Ctx) error {
	d := Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.Store != nil {
		d.Database = "✅ Available"
		d.ConnectionStatus = "Connected"
		err := guard(func() error {
			names, err := h.Store.CollectionNames(c.UserContext())
			if err != nil {
				return err
			}
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			if names != nil {
				d.Collections = names
			}
			return nil
		})
		if err != nil {
			d.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			d.Database = "✅ Connected & Working"
		}
	} else {
		d.Database = "⚠️  Available but not initialized"
	}

	d.DatabaseURL = presence(config.EnvDatabaseURL)
	d.DatabaseName = presence(config.EnvDatabaseName)
	return c.JSON(d)
}

// guard turns a panic in fn into an error so one probe cannot fail the response.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func presence(env string) string {
	if config.IsSet(env) {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
