// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package http

// DefaultPort is the port LocalSend peers listen on unless configured
// otherwise.
const DefaultPort uint16 = 53317

// _apiPrefix precedes the version tag in every API path.
const _apiPrefix = "/api/localsend/"

// Path is the suffix of an API endpoint following the version tag. It is
// appended verbatim: it must be empty or start with "/", and it is never
// escaped.
//
// Paths are meant to be compile-time constants, such as the ones below, and
// must not carry user input.
type Path string

// Endpoints of the LocalSend API.
const (
	// InfoPath returns the peer's device information.
	InfoPath Path = "/info"

	// RegisterPath announces the caller to the peer.
	RegisterPath Path = "/register"

	// PrepareUploadPath asks the peer to accept a set of files.
	PrepareUploadPath Path = "/prepare-upload"

	// UploadPath sends the contents of one file.
	UploadPath Path = "/upload"

	// CancelPath cancels an ongoing session.
	CancelPath Path = "/cancel"

	// PrepareDownloadPath lists the files a peer offers for download.
	PrepareDownloadPath Path = "/prepare-download"

	// DownloadPath fetches the contents of one offered file.
	DownloadPath Path = "/download"
)
