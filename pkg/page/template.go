package page

// pageTemplate is the fixed comparison page: a topbar with toggle switches,
// two code panes, and the external asset references. The toggle switches are
// declarative markup wired up by the page's script assets; nothing here
// depends on their runtime behavior.
const pageTemplate = `<!DOCTYPE html>
<html class="no-js">
    <head>
        <meta charset="utf-8">
        <title>
            {{.HTMLTitle}}
        </title>
        <meta name="description" content="">
        <meta name="viewport" content="width=device-width, initial-scale=1">
        <meta name="mobile-web-app-capable" content="yes">
        <link rel="stylesheet" href="{{.ResetCSS}}" type="text/css">
        <link rel="stylesheet" href="{{.DiffCSS}}" type="text/css">
        <link class="syntaxdef" rel="stylesheet" href="{{.PygmentsCSS}}" type="text/css">
    </head>
    <body>
        <div class="" id="topbar">
          <div id="filetitle">
            {{.PageTitle}}
          </div>
          <div class="switches">
            <div class="switch">
              <input id="showoriginal" class="toggle toggle-yes-no menuoption" type="checkbox" checked>
              <label for="showoriginal" data-on="&#10004; Original" data-off="Original"></label>
            </div>
            <div class="switch">
              <input id="showmodified" class="toggle toggle-yes-no menuoption" type="checkbox" checked>
              <label for="showmodified" data-on="&#10004; Modified" data-off="Modified"></label>
            </div>
            <div class="switch">
              <input id="highlight" class="toggle toggle-yes-no menuoption" type="checkbox" checked>
              <label for="highlight" data-on="&#10004; Highlight" data-off="Highlight"></label>
            </div>
            <div class="switch">
              <input id="codeprintmargin" class="toggle toggle-yes-no menuoption" type="checkbox" checked>
              <label for="codeprintmargin" data-on="&#10004; Margin" data-off="Margin"></label>
            </div>
            <div class="switch">
              <input id="dosyntaxhighlight" class="toggle toggle-yes-no menuoption" type="checkbox" checked>
              <label for="dosyntaxhighlight" data-on="&#10004; Syntax" data-off="Syntax"></label>
            </div>
          </div>
        </div>
        <div id="maincontainer" class="{{.PageWidth}}">
            <div id="leftcode" class="left-inner-shadow codebox divider-outside-bottom">
                <div class="codefiletab">
                    &#10092; Original
                </div>
                <div class="printmargin">
                    01234567890123456789012345678901234567890123456789012345678901234567890123456789
                </div>
                {{.OriginalCode}}
            </div>
            <div id="rightcode" class="left-inner-shadow codebox divider-outside-bottom">
                <div class="codefiletab">
                    &#10093; Modified
                </div>
                <div class="printmargin">
                    01234567890123456789012345678901234567890123456789012345678901234567890123456789
                </div>
                {{.ModifiedCode}}
            </div>
        </div>
<script src="{{.JQueryJS}}" type="text/javascript"></script>
<script src="{{.DiffJS}}" type="text/javascript"></script>
    </body>
</html>
`

// StyleBlock is the inline color styling prepended to both pane fragments so
// the exported PDF keeps the add/remove colors even without the external
// stylesheets.
const StyleBlock = `<style type="text/css">
    p.text {color:black;font-weight:bold;font-family:Calibri;font-size:20}
    span.add {color:green;font-weight:bold;font-family:Calibri;font-size:20}
    span.remove {color:red;font-weight:bold;font-family:Calibri;font-size:20}
</style>
`
