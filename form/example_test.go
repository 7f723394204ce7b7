package form_test

import (
	"fmt"

	"github.com/zostay/go-formdata/form"
)

func ExampleParse() {
	body := "--X\r\n" +
		"Content-Disposition: form-data; name=\"username\"\r\n" +
		"\r\n" +
		"john_doe\r\n" +
		"--X\r\n" +
		"Content-Disposition: form-data; name=\"file\"; filename=\"example.txt\"\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"Hello, world!\r\n" +
		"--X--\r\n"

	fd, err := form.Parse([]byte(body), "X")
	if err != nil {
		panic(err)
	}

	for _, p := range fd.Parts() {
		fmt.Printf("%s %q %q\n", p.Name(), p.Filename(), p.Body())
	}

	// Output:
	// username "" "john_doe"
	// file "example.txt" "Hello, world!"
}

func ExampleBuffer() {
	var buf form.Buffer
	_ = buf.SetBoundary("X")
	buf.AddField("username", "john_doe")

	out, err := buf.Bytes()
	if err != nil {
		panic(err)
	}

	fmt.Println(buf.ContentType())
	fmt.Printf("%q\n", out)

	// Output:
	// multipart/form-data; boundary=X
	// "--X\r\nContent-Disposition: form-data; name=\"username\"\r\n\r\njohn_doe\r\n--X--\r\n"
}

func ExampleParseError() {
	_, err := form.Parse([]byte("--X\r\nbroken\r\n\r\nbody\r\n--X--\r\n"), "X")
	fmt.Println(err)

	// Output:
	// formdata: malformed header field in part 0 at offset 5
}
