//go:build integration && windows

package integration

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winauto/internal/keys"
	"github.com/Norgate-AV/winauto/internal/locator"
	"github.com/Norgate-AV/winauto/internal/logger"
	"github.com/Norgate-AV/winauto/internal/simulator"
	"github.com/Norgate-AV/winauto/internal/windows"
)

const (
	// Timeout for waiting for Notepad to appear
	windowAppearTimeout = 15 * time.Second
	// Timeout for finding the edit control inside it
	controlFindTimeout = 5 * time.Second
)

// editClasses covers classic Notepad and the Windows 11 rewrite
var editClasses = []string{"Edit", "RichEditD2DPT"}

type notepad struct {
	process   *os.Process
	main      uintptr
	edit      uintptr
	tree      *windows.Tree
	locator   *locator.Locator
	simulator *simulator.Simulator
}

func startNotepad(t *testing.T) *notepad {
	t.Helper()

	log := logger.NewNoOpLogger()

	tree, err := windows.NewTree(log, 0)
	require.NoError(t, err)

	driver, err := windows.NewDriver(log)
	require.NoError(t, err)

	cmd := exec.Command("notepad.exe")
	require.NoError(t, cmd.Start(), "Notepad should start")

	t.Cleanup(func() {
		// The Windows 11 launcher exits early, so the kill may miss
		_ = cmd.Process.Kill()
	})

	loc := locator.New(tree, log)

	main, ok := loc.FindOnDesktop("Notepad", windowAppearTimeout)
	if !ok {
		t.Skip("Notepad window did not appear")
	}

	var edit uintptr
	for _, class := range editClasses {
		if edit, ok = loc.FindWithTimeout(main, class, controlFindTimeout); ok {
			break
		}
	}
	require.NotZero(t, edit, "Notepad should contain an edit control")

	return &notepad{
		process:   cmd.Process,
		main:      main,
		edit:      edit,
		tree:      tree,
		locator:   loc,
		simulator: simulator.New(driver, log),
	}
}

// TestIntegration_FindNotepad checks the top-level window and its edit control are found
func TestIntegration_FindNotepad(t *testing.T) {
	np := startNotepad(t)

	assert.True(t, windows.IsWindow(np.main))
	assert.True(t, windows.IsWindow(np.edit))
	assert.Equal(t, "Notepad", np.tree.ClassName(np.main))
	assert.Contains(t, np.tree.Title(np.main), "Notepad")
	assert.Contains(t, editClasses, np.tree.ClassName(np.edit))
}

// TestIntegration_FindMissingClass checks a search for an absent class honors its timeout
func TestIntegration_FindMissingClass(t *testing.T) {
	tree, err := windows.NewTree(logger.NewNoOpLogger(), 0)
	require.NoError(t, err)

	loc := locator.New(tree, logger.NewNoOpLogger())

	start := time.Now()
	_, ok := loc.FindOnDesktop("winauto-no-such-class", 200*time.Millisecond)

	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

// TestIntegration_InputToNotepad drives the edit control with each input method
func TestIntegration_InputToNotepad(t *testing.T) {
	np := startNotepad(t)

	assert.True(t, np.simulator.SimulateText(np.edit, "replaced"), "SetText should succeed")
	assert.True(t, np.simulator.SimulateChars(np.edit, " typed"), "Chars should succeed")

	combo, err := keys.Parse("ctrl+a,delete")
	require.NoError(t, err)
	assert.True(t, np.simulator.SimulateKeys(np.edit, combo), "Keys should be queued")
}

// TestIntegration_ClosedWindow checks input to a destroyed window fails
func TestIntegration_ClosedWindow(t *testing.T) {
	np := startNotepad(t)

	edit := np.edit
	_ = np.process.Kill()

	deadline := time.Now().Add(5 * time.Second)
	for windows.IsWindow(edit) {
		if time.Now().After(deadline) {
			t.Skip("Notepad is not owned by the launched process")
		}

		time.Sleep(50 * time.Millisecond)
	}

	assert.False(t, np.simulator.SimulateText(edit, "gone"))
	assert.False(t, np.simulator.SimulateClick(edit))
}
