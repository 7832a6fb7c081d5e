package xclassify

import "strings"

// 各谓词依据的注册表名称标签。
// 名称必须与注册表中的 Name 完全一致（区分大小写）。
var (
	loopbackNames  = []string{"Loopback", "Loopback Address"}
	localNames     = []string{"Limited Broadcast", "Link Local", "Link-Local Unicast"}
	privateNames   = []string{"Private-Use", "Unique-Local"}
	multicastNames = []string{"Multicast"}
)

const documentationPrefix = "Documentation"

func isDocumentationName(name string) bool {
	return strings.HasPrefix(name, documentationPrefix)
}
