//go:build !windows

package flash

// nativeAPI returns nil: there is no native flash primitive on this platform.
func nativeAPI() API {
	return nil
}

// ConsoleWindow returns 0: there are no console windows on this platform.
func ConsoleWindow() Handle {
	return 0
}
