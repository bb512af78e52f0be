//go:build corestream_debug

package corestream

const debug = true
