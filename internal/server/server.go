package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mz462/office-mcp/internal/powerpoint"
	"github.com/mz462/office-mcp/internal/tools"
)

type ExcelServer struct {
	server *server.MCPServer
}

func NewExcelServer(version string) *ExcelServer {
	s := &ExcelServer{}
	s.server = server.NewMCPServer(
		"excel-mcp-server",
		version,
	)
	tools.AddExcelDescribeSheetsTool(s.server)
	tools.AddExcelReadRangeTool(s.server)
	tools.AddExcelWriteRangeTool(s.server)
	tools.AddExcelSetCellTool(s.server)
	tools.AddExcelCreateSheetTool(s.server)
	// Structure inference tools
	tools.AddExcelFindUsedRangesTool(s.server)
	tools.AddExcelClassifyRangeTool(s.server)
	tools.AddExcelExtractLabelsTool(s.server)
	tools.AddExcelAnalyzeStructureTool(s.server)
	return s
}

func (s *ExcelServer) Start() error {
	return server.ServeStdio(s.server)
}

type PowerPointServer struct {
	server *server.MCPServer
}

func NewPowerPointServer(version string, ws *powerpoint.Workspace) *PowerPointServer {
	s := &PowerPointServer{}
	s.server = server.NewMCPServer(
		"powerpoint-mcp-server",
		version,
	)
	tools.AddPowerPointListPresentationsTool(s.server, ws)
	tools.AddPowerPointImportPresentationTool(s.server, ws)
	tools.AddPowerPointDescribePresentationTool(s.server, ws)
	tools.AddPowerPointDescribeSlideTool(s.server, ws)
	tools.AddPowerPointFindSlideTool(s.server, ws)
	tools.AddPowerPointAddSlideTool(s.server, ws)
	tools.AddPowerPointDeleteSlideTool(s.server, ws)
	tools.AddPowerPointAddTextTool(s.server, ws)
	tools.AddPowerPointAddShapeTool(s.server, ws)
	tools.AddPowerPointAddTableTool(s.server, ws)
	tools.AddPowerPointConnectShapesTool(s.server, ws)
	tools.AddPowerPointStyleElementTool(s.server, ws)
	tools.AddPowerPointEditElementTool(s.server, ws)
	tools.AddPowerPointSetBackgroundTool(s.server, ws)
	tools.AddPowerPointListTemplatesTool(s.server, ws)
	tools.AddPowerPointSaveAsTemplateTool(s.server, ws)
	tools.AddPowerPointNewFromTemplateTool(s.server, ws)
	return s
}

func (s *PowerPointServer) Start() error {
	return server.ServeStdio(s.server)
}
