package contentdisposition_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vfaronov/contentdisposition"
)

func Example() {
	h := http.Header{}
	contentdisposition.SetContentDisposition(h, "/srv/reports/€ rates.pdf")
	fmt.Println(h.Get("Content-Disposition"))

	v, _ := contentdisposition.ContentDisposition(h)
	fmt.Println(v.Type, v.Filename())
	// Output: attachment; filename="? rates.pdf"; filename*=UTF-8''%E2%82%AC%20rates.pdf
	// attachment € rates.pdf
}

func ExampleParse() {
	v, err := contentdisposition.Parse(`Attachment; filename="EURO rates"; filename*=utf-8''%e2%82%ac%20rates`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Type)
	fmt.Println(v.Filename())
	// Output: attachment
	// € rates
}

func ExampleParse_error() {
	_, err := contentdisposition.Parse(`attachment; filename="foo.html"; filename="bar.html"`)
	fmt.Println(errors.Is(err, contentdisposition.ErrDuplicateParameter))
	fmt.Println(err)
	// Output: true
	// contentdisposition: invalid duplicate parameter at offset 31: "filename"
}

func ExampleCreate() {
	s, _ := contentdisposition.Create("£ and € rates.pdf",
		contentdisposition.WithFallbackName("£ and EURO rates.pdf"))
	fmt.Println(s)
	// Output: attachment; filename="£ and EURO rates.pdf"; filename*=UTF-8''%C2%A3%20and%20%E2%82%AC%20rates.pdf
}

func ExampleFormat() {
	s, _ := contentdisposition.Format(&contentdisposition.Value{
		Type: "form-data",
		Params: map[string]string{
			"name":      "report",
			"filename*": "€ rates.pdf",
		},
	})
	fmt.Println(s)
	// Output: form-data; filename*=UTF-8''%E2%82%AC%20rates.pdf; name="report"
}

func ExampleDecodeExtValue() {
	text, lang, _ := contentdisposition.DecodeExtValue("UTF-8'ru'%D0%BF%D0%BB%D0%B0%D0%BD%D1%8B")
	fmt.Println(text, lang)
	// Output: планы ru
}
