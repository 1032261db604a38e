package responses

import (
	"fmt"
	"log"
	"net/http"
)

// WritePDFBytesWithFilename serves an assembled document inline, with
// the given download filename.
func WritePDFBytesWithFilename(w http.ResponseWriter, filename string, pdfBytes []byte) {
	WritePDFResponseHeaders(w, filename)
	if _, err := w.Write(pdfBytes); err != nil {
		log.Printf("[ERROR] writing PDF to response: %v", err)
	}
}

func WritePDFResponseHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK) // headers frozen from here
}
