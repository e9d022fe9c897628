package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func run(w io.Writer) error {
	x := fill(1, 5)
	_, err := fmt.Fprintf(w, "sum is %d\n", Sum(x))
	return err
}

func main() {
	if err := run(os.Stdout); err != nil {
		logrus.WithError(err).Fatal("write sum")
	}
}
