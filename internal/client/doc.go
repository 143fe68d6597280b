// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the board client's process lifecycle.
//
// It runs the terminal UI until the user quits and closes the relay
// connection on the way out. The UI opens the connection itself once it is
// listening for transport events.
package client
