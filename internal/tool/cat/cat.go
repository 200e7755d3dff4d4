// Package cat concatenates files into a string or into a redirect target.
package cat

import (
	"bytes"
	"context"
	"io"

	"github.com/Cyclone1070/sysutil/internal/config"
)

// CatTool handles the cat operation.
type CatTool struct {
	fs     fileOpener
	warn   warner
	config *config.Config
}

// NewCatTool creates a new CatTool with injected dependencies.
func NewCatTool(fs fileOpener, warn warner, cfg *config.Config) *CatTool {
	return &CatTool{fs: fs, warn: warn, config: cfg}
}

// Run concatenates the request's files in order. Without an output the
// combined content is returned in the response; with one, the target is
// truncated or appended to and the content streamed into it. Inputs that
// cannot be read are warned about and skipped. Failing to open or write the
// target is an error.
func (t *CatTool) Run(ctx context.Context, req *CatRequest) (*CatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp := &CatResponse{Output: req.Output()}

	if req.Output() == "" {
		var content bytes.Buffer
		n, err := t.copyAll(&content, req.Files(), resp)
		if err != nil {
			return nil, err
		}
		resp.Content = content.String()
		resp.Written = n
		return resp, nil
	}

	out, err := t.fs.OpenWriter(req.Output(), req.Append())
	if err != nil {
		return nil, &OutputOpenError{Path: req.Output(), Cause: err}
	}

	n, copyErr := t.copyAll(out, req.Files(), resp)
	closeErr := out.Close()
	if copyErr != nil {
		return nil, &WriteError{Path: req.Output(), Cause: copyErr}
	}
	if closeErr != nil {
		return nil, &WriteError{Path: req.Output(), Cause: closeErr}
	}

	resp.Written = n
	return resp, nil
}

// copyAll streams every input into dst and returns the byte total. Only a
// failure on dst is returned; input failures are recorded in resp.Skipped.
func (t *CatTool) copyAll(dst io.Writer, files []string, resp *CatResponse) (int64, error) {
	buf := make([]byte, t.config.Tools.CatBufferSize)
	var total int64

	for _, path := range files {
		in, err := t.fs.Open(path)
		if err != nil {
			t.skip(path, err, resp)
			continue
		}

		w := &countingWriter{w: dst}
		// Hide io.WriterTo so the copy goes through buf in CatBufferSize chunks.
		_, err = io.CopyBuffer(w, struct{ io.Reader }{in}, buf)
		in.Close()
		total += w.n
		if w.err != nil {
			return total, w.err
		}
		if err != nil {
			t.skip(path, err, resp)
		}
	}
	return total, nil
}

func (t *CatTool) skip(path string, cause error, resp *CatResponse) {
	t.warn.Warn("could not open file", "path", path, "err", &InputOpenError{Path: path, Cause: cause})
	resp.Skipped = append(resp.Skipped, path)
}

// countingWriter tells write failures apart from read failures inside
// io.CopyBuffer, which reports both through one error.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil {
		c.err = err
	}
	return n, err
}
