// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeyou is a client for the FakeYou text-to-speech and Wave2Lip
// (W2L) lip-sync API.
//
// A [Client] owns one HTTP session: the base URL, the default JSON headers,
// the connection pool, and the session cookie attached by [Client.Login].
// All operations are synchronous and take a context.Context.
//
// The two job kinds are polled differently. TTS polling is caller-driven:
// [Client.TTSStatus] performs exactly one poll, and [WaitTTS] is an optional
// loop on top of it. W2L polling is library-driven: [Client.W2LPoll] blocks
// until the job reaches a terminal status, the poll bounds are exhausted, or
// the context is done.
//
// Every failure is an [*Error] whose [Kind] identifies the remote condition;
// use errors.Is with the sentinel values (e.g. [ErrTooManyRequests]) to tell
// recoverable conditions from terminal ones.
package fakeyou
