package packrat

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("packrat")
