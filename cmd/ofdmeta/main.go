// Copyright 2026 肖其顿 (XIAO QI DUN)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ofdmeta 命令行工具: 输出OFD文件的元数据快照
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xiaoqidun/ofdmeta"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: ofdmeta <file.ofd>")
		os.Exit(2)
	}
	start := time.Now()
	doc, err := ofdmeta.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer doc.Close()
	data, err := doc.Snapshot()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	fmt.Fprintf(os.Stderr, "elapsed: %s\n", time.Since(start))
}
