// SPDX-License-Identifier: Apache-2.0

// Package client implements the learnwords client application runtime.
//
// It wires the session restore flow, the background statistics job, the page
// renderers, and the navigation loop into a single process lifecycle.
package client
