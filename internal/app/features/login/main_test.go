package login_test

import (
	"os"
	"testing"

	_ "github.com/dalemusser/resourcehub/internal/app/features/shared/views"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// TestMain boots the template engine so handlers can render pages, mirroring
// the setup BuildHandler performs at startup.
func TestMain(m *testing.M) {
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		panic(err)
	}
	templates.UseEngine(eng, zap.NewNop())
	os.Exit(m.Run())
}
